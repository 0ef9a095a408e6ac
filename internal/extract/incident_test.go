package extract

import (
	"strings"
	"testing"

	"github.com/avolkov/fnoltriage/internal/model"
)

func newIncidentExtractor() *IncidentExtractor {
	return NewIncidentExtractor(model.DefaultConfig().Extraction)
}

func TestIncidentExtractor_DatePriority(t *testing.T) {
	extractor := newIncidentExtractor()

	// "Incident Date" appears first in the document but sits later in the
	// fallback chain, so "DATE OF LOSS" must win.
	text := "Incident Date: 03/04/2024\nDATE OF LOSS: 01/02/2024\n"

	fields := extractor.Extract(text)
	if got := fields.GetString(model.FieldIncidentDate); got != "01/02/2024" {
		t.Errorf("incident_date = %q, want %q", got, "01/02/2024")
	}
}

func TestIncidentExtractor_DateFormats(t *testing.T) {
	extractor := newIncidentExtractor()

	cases := []struct {
		name string
		text string
		want string
	}{
		{"acord combined label", "DATE OF LOSS AND TIME: 05/06/2024 2:30 PM\n", "05/06/2024"},
		{"loss date label", "Loss Date: 7-8-24\n", "7-8-24"},
		{"parenthesized format hint", "DATE (MM/DD/YYYY): 12/31/2023\n", "12/31/2023"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := extractor.Extract(tc.text)
			if got := fields.GetString(model.FieldIncidentDate); got != tc.want {
				t.Errorf("incident_date = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIncidentExtractor_Time(t *testing.T) {
	extractor := newIncidentExtractor()

	cases := []struct {
		name string
		text string
		want string
	}{
		{"labeled with meridiem", "TIME: 2:30 PM\n", "2:30 PM"},
		{"labeled without meridiem", "TIME: 14:30\n", "14:30"},
		{"inline at", "occurred at 9:15 AM on the highway\n", "9:15 AM"},
		{"bare time with meridiem", "DATE OF LOSS AND TIME: 05/06/2024 2:30 PM\n", "2:30 PM"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := extractor.Extract(tc.text)
			if got := fields.GetString(model.FieldIncidentTime); got != tc.want {
				t.Errorf("incident_time = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIncidentExtractor_Location(t *testing.T) {
	extractor := newIncidentExtractor()

	fields := extractor.Extract("LOCATION OF LOSS: 100 Main St\n")
	if got := fields.GetString(model.FieldIncidentLocation); got != "100 Main St" {
		t.Errorf("incident_location = %q, want %q", got, "100 Main St")
	}
}

func TestIncidentExtractor_LocationTooShortDiscarded(t *testing.T) {
	extractor := newIncidentExtractor()

	fields := extractor.Extract("Location: NA\n")
	if fields.Has(model.FieldIncidentLocation) {
		t.Errorf("expected short location to be discarded, got %q",
			fields.GetString(model.FieldIncidentLocation))
	}
}

func TestIncidentExtractor_CityStateZipKeepsLabel(t *testing.T) {
	extractor := newIncidentExtractor()

	cases := []struct {
		name string
		text string
		want string
	}{
		{
			"combined acord label",
			"CITY, STATE, ZIP: Springfield, IL 62704\n",
			"CITY, STATE, ZIP: Springfield, IL 62704",
		},
		{
			"city label",
			"City: Springfield, IL 62704\n",
			"City: Springfield, IL 62704",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := extractor.Extract(tc.text)
			if got := fields.GetString(model.FieldCityStateZip); got != tc.want {
				t.Errorf("city_state_zip = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIncidentExtractor_DescriptionStopsAtLabelLine(t *testing.T) {
	extractor := newIncidentExtractor()

	text := "DESCRIPTION OF ACCIDENT: Vehicle was struck\non the left side\nPOLICE REPORT: yes\n"

	fields := extractor.Extract(text)
	want := "Vehicle was struck on the left side"
	if got := fields.GetString(model.FieldIncidentDescription); got != want {
		t.Errorf("incident_description = %q, want %q", got, want)
	}
}

func TestIncidentExtractor_DescriptionStopsAtEmptyLine(t *testing.T) {
	extractor := newIncidentExtractor()

	text := "Incident Description: rear bumper dented\nin the parking garage\n\nunrelated trailing text\n"

	fields := extractor.Extract(text)
	want := "rear bumper dented in the parking garage"
	if got := fields.GetString(model.FieldIncidentDescription); got != want {
		t.Errorf("incident_description = %q, want %q", got, want)
	}
}

func TestIncidentExtractor_DescriptionContinuationBudget(t *testing.T) {
	extractor := newIncidentExtractor()

	var b strings.Builder
	b.WriteString("DESCRIPTION OF ACCIDENT: line0\n")
	for i := 1; i <= 8; i++ {
		b.WriteString("cont\n")
	}

	fields := extractor.Extract(b.String())
	got := fields.GetString(model.FieldIncidentDescription)

	// First line plus at most five continuation lines.
	want := "line0 cont cont cont cont cont"
	if got != want {
		t.Errorf("incident_description = %q, want %q", got, want)
	}
}

func TestIncidentExtractor_DescriptionWordCap(t *testing.T) {
	extractor := newIncidentExtractor()

	text := "DESCRIPTION OF ACCIDENT: " + strings.TrimSpace(strings.Repeat("word ", 120)) + "\n"

	fields := extractor.Extract(text)
	got := fields.GetString(model.FieldIncidentDescription)
	if n := len(strings.Fields(got)); n != 100 {
		t.Errorf("description word count = %d, want 100", n)
	}
}
