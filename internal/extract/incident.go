package extract

import (
	"regexp"
	"strings"

	"github.com/avolkov/fnoltriage/internal/model"
)

// IncidentExtractor extracts loss date, time, location and the free-text
// accident description.
type IncidentExtractor struct {
	rules    []Rule
	desc     []descPattern
	maxLines int
	maxWords int
	maxChars int
}

// descPattern locates the start of the accident description. Guarded
// patterns stop continuation at the next all-caps label line; unguarded
// ones take continuation lines unconditionally.
type descPattern struct {
	re      *regexp.Regexp
	guarded bool
}

// labelLineRE recognizes an all-caps label line such as "POLICE REPORT:",
// which terminates a description block.
var labelLineRE = regexp.MustCompile(`^[A-Z\s]+:`)

// NewIncidentExtractor creates an incident extractor. The extraction
// config bounds description captures.
func NewIncidentExtractor(cfg model.ExtractionConfig) *IncidentExtractor {
	return &IncidentExtractor{
		rules: []Rule{
			{
				Key: model.FieldIncidentDate,
				Chain: []Pattern{
					pat(`(?i)DATE\s+OF\s+LOSS\s+AND\s+TIME[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
					pat(`(?i)DATE\s+OF\s+LOSS[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
					pat(`(?i)Loss\s+Date[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
					pat(`(?i)Incident\s+Date[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
					pat(`(?i)DATE\s*\(MM/DD/YYYY\)[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
				},
			},
			{
				Key: model.FieldIncidentTime,
				Chain: []Pattern{
					patBuild(`(?i)TIME[:\s]*(\d{1,2}:\d{2})\s*(AM|PM)?`, joinTime),
					patBuild(`(?i)(?:at|@)\s*(\d{1,2}:\d{2})\s*(AM|PM)?`, joinTime),
					patBuild(`(?i)(\d{1,2}:\d{2})\s*(AM|PM)`, joinTime),
				},
			},
			{
				Key: model.FieldIncidentLocation,
				Chain: []Pattern{
					pat(`(?i)LOCATION\s+OF\s+LOSS[:\s]*STREET[:\s]*([^\n]+?)(?:CITY|COUNTRY|\n\n)`),
					pat(`(?i)LOCATION\s+OF\s+LOSS[:\s]*([^\n]+)`),
					pat(`(?i)STREET[:\s]*([^\n]+?)(?:CITY|COUNTRY|STATE)`),
					pat(`(?i)(?:Location|Address)[:\s]*([^\n]+)`),
				},
				MinLen: 3,
			},
			{
				Key: model.FieldCityStateZip,
				// Both forms keep the whole match, label included; the
				// field is a verbatim line, not a parsed value.
				Chain: []Pattern{
					patBuild(`(?i)CITY,\s*STATE,\s*ZIP[:\s]*([^\n]+)`, wholeMatch),
					patBuild(`(?i)City[:\s]*([A-Za-z\s]+),?\s*([A-Z]{2})\s*(\d{5})`, wholeMatch),
				},
			},
			{
				Key: model.FieldCountry,
				Chain: []Pattern{
					pat(`(?i)COUNTRY[:\s]*([A-Za-z\s]+?)(?:\n|CITY)`),
				},
			},
		},
		desc: []descPattern{
			{re: regexp.MustCompile(`(?i)DESCRIPTION\s+OF\s+ACCIDENT[:\s]*\([^)]+\)[:\s]*([^\n]+)`), guarded: true},
			{re: regexp.MustCompile(`(?i)DESCRIPTION\s+OF\s+ACCIDENT[:\s]*([^\n]+)`), guarded: true},
			{re: regexp.MustCompile(`(?i)(?:Accident|Incident)\s+Description[:\s]*([^\n]+)`), guarded: false},
		},
		maxLines: cfg.MaxContinuationLines,
		maxWords: cfg.MaxDescriptionWords,
		maxChars: cfg.MaxDescriptionChars,
	}
}

// Extract returns the incident fields found in text.
func (e *IncidentExtractor) Extract(text string) model.FieldMap {
	fields := apply(text, e.rules)

	if desc := e.extractDescription(text); desc != "" {
		fields[model.FieldIncidentDescription] = desc
	}

	return fields
}

// extractDescription captures the description's first line plus
// continuation lines, stopping at an empty line, at the continuation
// budget, or (for guarded patterns) at the next all-caps label line.
func (e *IncidentExtractor) extractDescription(text string) string {
	for _, dp := range e.desc {
		loc := dp.re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}

		block := text[loc[2]:loc[3]]
		rest := text[loc[1]:]

		lines := strings.Split(strings.TrimPrefix(rest, "\n"), "\n")
		for i := 0; i < len(lines) && i < e.maxLines; i++ {
			line := lines[i]
			if strings.TrimSpace(line) == "" {
				break
			}
			if dp.guarded && labelLineRE.MatchString(line) {
				break
			}
			block += " " + line
		}

		desc := TruncateChars(TruncateWords(Collapse(block), e.maxWords), e.maxChars)
		if desc != "" {
			return desc
		}
	}

	return ""
}

// joinTime concatenates the time token and its optional AM/PM suffix.
func joinTime(m []string) string {
	return strings.TrimSpace(m[1] + " " + m[2])
}

// wholeMatch keeps the entire match, used where the label and value
// together form the field (reconstructed city/state/zip).
func wholeMatch(m []string) string {
	return m[0]
}
