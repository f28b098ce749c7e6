package cron

import (
	"reflect"
	"testing"
)

func TestRegisterAndRunJob(t *testing.T) {
	var gotArgs []string
	Register("nightlystock", "30 6 * * *", func(args ...string) {
		gotArgs = args
	})
	defer Unregister("nightlystock")

	j, ok := Jobs()["nightlystock"]
	if !ok {
		t.Fatal("nightlystock not registered")
	}
	if j.Schedule != "30 6 * * *" {
		t.Errorf("schedule = %q", j.Schedule)
	}
	j.Run("exports/lager.csv")
	if !reflect.DeepEqual(gotArgs, []string{"exports/lager.csv"}) {
		t.Errorf("args = %v", gotArgs)
	}
}

func TestNamesSorted(t *testing.T) {
	Register("zalihe", "@daily", func(...string) {})
	Register("artikli", "@daily", func(...string) {})
	defer Unregister("zalihe")
	defer Unregister("artikli")

	names := Names()
	want := []string{"artikli", "zalihe"}
	got := make([]string, 0, len(want))
	for _, n := range names {
		if n == "artikli" || n == "zalihe" {
			got = append(got, n)
		}
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Names() order = %v, want %v", got, want)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dupjob", "@hourly", func(...string) {})
	defer Unregister("dupjob")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate")
		}
	}()
	Register("dupjob", "@daily", func(...string) {})
}

func TestStartCronRejectsBadSpec(t *testing.T) {
	Register("badspec", "not a schedule", func(...string) {})
	defer Unregister("badspec")

	if _, err := StartCron(); err == nil {
		t.Error("expected error for invalid cron spec")
	}
}
