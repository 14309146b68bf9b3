package dataset

import (
	"errors"
	"strings"
	"testing"

	"github.com/Bimsara-Yehan/Data-Analysis/internal/engine"
)

const sampleCSV = `RowNumber,CustomerId,Surname,CreditScore,Geography,Gender,Age,Tenure,Balance,NumOfProducts,HasCrCard,IsActiveMember,EstimatedSalary,Exited
1,15634602,Hargrave,619,France,Female,42,2,0,1,1,1,101348.88,1
2,15647311,Hill,608,Spain,Female,41,1,83807.86,1,0,1,112542.58,0
3,15619304,Onio,502,Germany,Female,42,8,159660.8,3,1,0,113931.57,1
`

func TestReadParsesRecords(t *testing.T) {
	table, err := Read(strings.NewReader(sampleCSV), "test.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Records) != 3 {
		t.Fatalf("got %d records, want 3", len(table.Records))
	}

	rec := table.Records[0]
	if rec.CustomerID != "15634602" || rec.Surname != "Hargrave" {
		t.Errorf("identity fields wrong: %+v", rec)
	}
	if rec.Geography != "France" || rec.Gender != "Female" || rec.Age != 42 {
		t.Errorf("categorical fields wrong: %+v", rec)
	}
	if rec.Balance != 0 || rec.NumProducts != 1 || !rec.IsActive || !rec.Exited {
		t.Errorf("numeric/flag fields wrong: %+v", rec)
	}
	if rec.CreditScore != 619 || rec.Tenure != 2 || !rec.HasCreditCard || rec.EstimatedSalary != 101348.88 {
		t.Errorf("optional fields wrong: %+v", rec)
	}

	third := table.Records[2]
	if third.IsActive || !third.Exited || third.Balance != 159660.8 {
		t.Errorf("third record wrong: %+v", third)
	}
}

func TestReadKeepsRawCells(t *testing.T) {
	table, err := Read(strings.NewReader(sampleCSV), "test.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw := table.Records[1].Raw
	if len(raw) != len(table.Header) {
		t.Fatalf("raw has %d cells, header has %d", len(raw), len(table.Header))
	}
	if raw[8] != "83807.86" {
		t.Errorf("raw balance cell = %q, want original text", raw[8])
	}
}

func TestReadComputesBounds(t *testing.T) {
	table, err := Read(strings.NewReader(sampleCSV), "test.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.AgeBounds.Min != 41 || table.AgeBounds.Max != 42 {
		t.Errorf("age bounds = %+v, want [41,42]", table.AgeBounds)
	}
	if table.BalanceBounds.Min != 0 || table.BalanceBounds.Max != 159660.8 {
		t.Errorf("balance bounds = %+v", table.BalanceBounds)
	}
}

func TestReadCleansQuotedHeaders(t *testing.T) {
	quoted := `"CustomerId","Geography","Gender","Age","Balance","NumOfProducts","IsActiveMember","Exited"
1,France,Male,30,1000,2,1,0
`
	table, err := Read(strings.NewReader(quoted), "test.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !table.HasColumn("Geography") {
		t.Errorf("quoted header not cleaned: %v", table.Header)
	}
}

func TestReadMissingRequiredColumn(t *testing.T) {
	noGeo := `CustomerId,Gender,Age,Balance,NumOfProducts,IsActiveMember,Exited
1,Male,30,1000,2,1,0
`
	_, err := Read(strings.NewReader(noGeo), "test.csv")

	var missing *engine.MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("got %v, want MissingFieldError", err)
	}
	if missing.Field != "Geography" {
		t.Errorf("field = %q, want Geography", missing.Field)
	}
}

func TestReadMalformedCell(t *testing.T) {
	bad := `CustomerId,Geography,Gender,Age,Balance,NumOfProducts,IsActiveMember,Exited
1,France,Male,notanage,1000,2,1,0
`
	_, err := Read(strings.NewReader(bad), "test.csv")

	var malformed *engine.MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("got %v, want MalformedInputError", err)
	}
	if malformed.Line != 2 {
		t.Errorf("line = %d, want 2", malformed.Line)
	}
}
