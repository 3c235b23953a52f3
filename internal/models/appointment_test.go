package models

import "testing"

func TestParseAppointmentStatus_CaseInsensitive(t *testing.T) {
	cases := map[string]AppointmentStatus{
		"Scheduled":   StatusScheduled,
		"scheduled":   StatusScheduled,
		"UPCOMING":    StatusUpcoming,
		"rescheduled": StatusRescheduled,
		"CanCelled":   StatusCancelled,
		" Completed ": StatusCompleted,
	}
	for input, want := range cases {
		got, err := ParseAppointmentStatus(input)
		if err != nil {
			t.Errorf("ParseAppointmentStatus(%q): unexpected error: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParseAppointmentStatus(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestParseAppointmentStatus_RejectsUnknown(t *testing.T) {
	for _, input := range []string{"", "Pending", "no_show", "Confirmed"} {
		if _, err := ParseAppointmentStatus(input); err == nil {
			t.Errorf("ParseAppointmentStatus(%q): expected error for unknown status", input)
		}
	}
}

func TestAppointmentStatus_Is(t *testing.T) {
	if !AppointmentStatus("RESCHEDULED").Is(StatusRescheduled) {
		t.Error("expected case-insensitive match for RESCHEDULED")
	}
	if StatusScheduled.Is(StatusCancelled) {
		t.Error("Scheduled must not match Cancelled")
	}
}
