package entry

import "strings"

const noJournal = "No journal entry."

// JournalOrPlaceholder returns the note, or a placeholder when it is blank.
func (e MoodEntry) JournalOrPlaceholder() string {
	if strings.TrimSpace(e.Journal) == "" {
		return noJournal
	}
	return e.Journal
}

// Row is the tabular form used by the history printers.
func (e MoodEntry) Row() (string, string, string, string, string) {
	return e.Mood.Glyph().Symbol, string(e.Mood), FormatLongDate(e.CreatedAt), e.DisplayTime, e.JournalOrPlaceholder()
}
