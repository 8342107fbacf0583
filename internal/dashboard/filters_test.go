package dashboard

import (
	"reflect"
	"testing"

	"github.com/Untraddgit/untraddcareer-sub001/internal/grading"
	"github.com/Untraddgit/untraddcareer-sub001/internal/student"
	"github.com/Untraddgit/untraddcareer-sub001/internal/submission"
	"github.com/Untraddgit/untraddcareer-sub001/internal/testresult"
)

func sampleRows() []ResultRow {
	students := []student.Student{
		{ID: "stu_1", FirstName: "Asha", LastName: "Patel"},
		{ID: "stu_2", FirstName: "Rahul", LastName: "Verma"},
		{ID: "stu_3", FirstName: "Meera", LastName: "Nair"},
	}
	results := []testresult.TestResult{
		{ID: "r1", StudentID: "stu_1", Score: 85},
		{ID: "r2", StudentID: "stu_2", Score: 65},
		{ID: "r3", StudentID: "stu_3", Score: 40},
	}
	return BuildResultRows(students, results)
}

func ids(rows []ResultRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ResultID
	}
	return out
}

func TestBuildResultRowsJoinsAndBands(t *testing.T) {
	rows := sampleRows()
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0].StudentName != "Asha Patel" {
		t.Errorf("row 0 name = %q", rows[0].StudentName)
	}
	if rows[0].Band != grading.BandGood || rows[1].Band != grading.BandWarn || rows[2].Band != grading.BandWarn {
		t.Errorf("bands = %v %v %v", rows[0].Band, rows[1].Band, rows[2].Band)
	}
}

func TestFilterRows(t *testing.T) {
	rows := sampleRows()
	if got := FilterRows(rows, FilterAll); !reflect.DeepEqual(ids(got), []string{"r1", "r2", "r3"}) {
		t.Errorf("all: %v", ids(got))
	}
	if got := FilterRows(rows, FilterHighPerformer); !reflect.DeepEqual(ids(got), []string{"r1"}) {
		t.Errorf("high: %v", ids(got))
	}
	if got := FilterRows(rows, FilterScholarship); !reflect.DeepEqual(ids(got), []string{"r1", "r2"}) {
		t.Errorf("scholarship: %v", ids(got))
	}
	// boundary: exactly 70 is a high performer, exactly 60 is scholarship
	edge := []ResultRow{{ResultID: "e1", Score: 70}, {ResultID: "e2", Score: 60}}
	if got := FilterRows(edge, FilterHighPerformer); !reflect.DeepEqual(ids(got), []string{"e1"}) {
		t.Errorf("high edge: %v", ids(got))
	}
	if got := FilterRows(edge, FilterScholarship); !reflect.DeepEqual(ids(got), []string{"e1", "e2"}) {
		t.Errorf("scholarship edge: %v", ids(got))
	}
}

func TestSearchRows(t *testing.T) {
	rows := sampleRows()
	// empty term: unchanged, order preserved
	if got := SearchRows(rows, ""); !reflect.DeepEqual(got, rows) {
		t.Error("empty term must return input unchanged")
	}
	// case-insensitive name match
	if got := SearchRows(rows, "ASHA"); len(got) != 1 || got[0].ResultID != "r1" {
		t.Errorf("name search: %v", ids(got))
	}
	// id substring match
	if got := SearchRows(rows, "stu_2"); len(got) != 1 || got[0].ResultID != "r2" {
		t.Errorf("id search: %v", ids(got))
	}
	// search AND filter compose
	got := FilterRows(SearchRows(rows, "stu"), FilterScholarship)
	if !reflect.DeepEqual(ids(got), []string{"r1", "r2"}) {
		t.Errorf("combined: %v", ids(got))
	}
}

func TestGroupSubmissionsPreservesOrder(t *testing.T) {
	subs := []submission.Submission{
		{ID: "a", StudentID: "stu_1", Week: 1},
		{ID: "b", StudentID: "stu_2", Week: 1},
		{ID: "c", StudentID: "stu_1", Week: 2},
		{ID: "d", StudentID: "stu_1", Week: 3},
	}
	groups := GroupSubmissions(subs)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	got := groups["stu_1"]
	if len(got) != 3 || got[0].ID != "a" || got[1].ID != "c" || got[2].ID != "d" {
		t.Errorf("stu_1 order: %+v", got)
	}
}

func TestBuildScholarshipView(t *testing.T) {
	view, err := BuildScholarshipView(nil)
	if err != nil {
		t.Fatal(err)
	}
	if view.RetestOffer || view.Eligible || view.Band != grading.BandUnknown {
		t.Errorf("no-result view = %+v", view)
	}

	r := testresult.TestResult{ID: "r", StudentID: "stu_1", Score: 55}
	view, err = BuildScholarshipView(&r)
	if err != nil {
		t.Fatal(err)
	}
	if !view.RetestOffer || view.Eligible {
		t.Errorf("score 55: view = %+v", view)
	}
	if view.Tier.Discount != 0 || view.Tier.Label != "not eligible" {
		t.Errorf("score 55 tier = %+v", view.Tier)
	}

	r.Score = 75
	view, _ = BuildScholarshipView(&r)
	if view.Tier.Discount != 10 || view.RetestOffer {
		t.Errorf("score 75 view = %+v", view)
	}
}
