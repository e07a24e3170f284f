package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mutagenyx/mutagenyx/internal/generate"
)

func openTestLedger(t *testing.T) *Ledger {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	ledger, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = ledger.Close() })
	return ledger
}

func TestRecordAndHistoryRoundTrip(t *testing.T) {
	ledger := openTestLedger(t)

	result := generate.FileResult{
		InputFile: "Token.sol",
		Mutants: []generate.MutantRecord{
			{InputFile: "Token.sol", Algorithm: "ArithmeticBinaryOp", Seed: 1, Index: 0, Comment: "changed '+' to '-'", OutputPath: "out/Token_ArithmeticBinaryOp_0.sol"},
			{InputFile: "Token.sol", Algorithm: "Integer", Seed: 1, Index: 1, Comment: "changed 1 to 2", OutputPath: "out/Token_Integer_1.sol"},
		},
	}

	runAt := time.Unix(1700000000, 0).UTC()
	if err := ledger.Record(runAt, result); err != nil {
		t.Fatalf("Record: %v", err)
	}

	records, err := ledger.History("Token.sol")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Algorithm != "ArithmeticBinaryOp" || records[1].Algorithm != "Integer" {
		t.Fatalf("unexpected ordering: %+v", records)
	}
	if !records[0].RunAt.Equal(runAt) {
		t.Fatalf("expected run_at %v, got %v", runAt, records[0].RunAt)
	}
}

func TestHistoryFiltersByInputFile(t *testing.T) {
	ledger := openTestLedger(t)

	_ = ledger.Record(time.Now(), generate.FileResult{
		Mutants: []generate.MutantRecord{{InputFile: "A.sol", Algorithm: "Integer", OutputPath: "A_Integer_0.sol"}},
	})
	_ = ledger.Record(time.Now(), generate.FileResult{
		Mutants: []generate.MutantRecord{{InputFile: "B.sol", Algorithm: "Integer", OutputPath: "B_Integer_0.sol"}},
	})

	records, err := ledger.History("B.sol")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(records) != 1 || records[0].InputFile != "B.sol" {
		t.Fatalf("expected only B.sol's record, got %+v", records)
	}
}

func TestHistoryEmptyInputFileReturnsEverything(t *testing.T) {
	ledger := openTestLedger(t)

	_ = ledger.Record(time.Now(), generate.FileResult{
		Mutants: []generate.MutantRecord{{InputFile: "A.sol", Algorithm: "Integer", OutputPath: "A_Integer_0.sol"}},
	})
	_ = ledger.Record(time.Now(), generate.FileResult{
		Mutants: []generate.MutantRecord{{InputFile: "B.sol", Algorithm: "Integer", OutputPath: "B_Integer_0.sol"}},
	})

	records, err := ledger.History("")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records across both files, got %d", len(records))
	}
}

func TestRecordWithNoMutantsIsANoOp(t *testing.T) {
	ledger := openTestLedger(t)
	if err := ledger.Record(time.Now(), generate.FileResult{InputFile: "Empty.sol"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	records, err := ledger.History("")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}
