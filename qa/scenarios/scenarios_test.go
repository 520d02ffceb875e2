package scenarios

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScenario(t *testing.T) {
	files, err := filepath.Glob("*.yaml")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no scenario files found")
	}
	for _, f := range files {
		sc, err := Load(f)
		if err != nil {
			t.Fatalf("load %s: %v", f, err)
		}
		t.Run(sc.Name, func(t *testing.T) {
			RunScenario(t, sc)
		})
	}
}

func TestLoadInvalid(t *testing.T) {
	if _, err := Load("no-file.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
	tmp, err := os.CreateTemp(t.TempDir(), "bad*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tmp.WriteString(":"); err != nil {
		t.Fatal(err)
	}
	if err := tmp.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(tmp.Name()); err == nil {
		t.Fatal("expected unmarshal error")
	}
}

func TestEmployeeDefToModel(t *testing.T) {
	def := EmployeeDef{
		ID:   "e1",
		Name: "Ada",
		Shifts: []ShiftDef{{
			Day:   1,
			Start: "09:00",
			End:   "17:00",
			Breaks: []BreakDef{{Kind: "lunch", Start: "12:00", End: "13:00"}},
		}},
	}
	emp := def.ToModel()
	if emp.ID != "e1" || len(emp.Shifts) != 1 {
		t.Fatalf("unexpected employee: %+v", emp)
	}
	if len(emp.Shifts[0].Breaks) != 1 || string(emp.Shifts[0].Breaks[0].Kind) != "lunch" {
		t.Fatalf("break not carried over: %+v", emp.Shifts[0])
	}
}
