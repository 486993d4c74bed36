package vehiclecli

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.SetArgs(args)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	err := cmd.Execute()
	return buf.String(), err
}

func TestDemoStartsBothEngines(t *testing.T) {
	out, err := execute(t)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "Toyota Corolla (EU Spec): Engine started") {
		t.Errorf("missing EU car line in:\n%s", out)
	}
	if !strings.Contains(out, "Harley-Davidson Sportster (US Spec): Engine fired up") {
		t.Errorf("missing US motorcycle line in:\n%s", out)
	}
}

func TestStartCar(t *testing.T) {
	out, err := execute(t, "start", "--region", "eu", "--make", "Toyota", "--model", "Corolla")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Toyota Corolla (EU Spec): Engine started") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestStartMotorcycleDefaultsToUS(t *testing.T) {
	out, err := execute(t, "start", "--type", "motorcycle", "--make", "Ducati", "--model", "Monster")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Ducati Monster (US Spec): Engine fired up") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestStartRejectsUnknownRegion(t *testing.T) {
	_, err := execute(t, "start", "--region", "apac", "--make", "X", "--model", "Y")
	if err == nil || !strings.Contains(err.Error(), "unknown region") {
		t.Fatalf("err = %v, want unknown region error", err)
	}
}

func TestStartRejectsUnknownType(t *testing.T) {
	_, err := execute(t, "start", "--type", "boat", "--make", "X", "--model", "Y")
	if err == nil || !strings.Contains(err.Error(), "unknown vehicle type") {
		t.Fatalf("err = %v, want unknown vehicle type error", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "motorpool") {
		t.Errorf("unexpected output: %q", out)
	}
}
