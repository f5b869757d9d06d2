// Package gameid derives stable game identifiers and parses game labels.
//
// A game's identity is content-derived: the same (date, team, opponent)
// triple always hashes to the same id, which is what makes re-imports of the
// same file detectable without any external id authority.
package gameid

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultTeam is the franchise a label falls back to when it carries a date
// but no recognizable team token.
const DefaultTeam = "Heat"

// UnknownOpponent is the sentinel used when a label has no opponent token.
const UnknownOpponent = "Unknown"

var datePattern = regexp.MustCompile(`\d{1,2}\.\d{1,2}\.\d{2}`)

// Generate returns the stable identifier for a game. Date is trimmed;
// opponent and team are trimmed and lowercased, so case and surrounding
// whitespace never produce distinct ids for the same real-world game.
func Generate(dateString, opponent, team string) string {
	date := strings.TrimSpace(dateString)
	opp := strings.ToLower(strings.TrimSpace(opponent))
	tm := strings.ToLower(strings.TrimSpace(team))

	sum := sha256.Sum256([]byte(fmt.Sprintf("%s_%s_%s", date, tm, opp)))
	return hex.EncodeToString(sum[:])[:16]
}

// ParseLabel extracts (date, team, opponent) from a timeline label or
// filename such as "10.06.25 Heat v Bucks(team).csv". Separator fallbacks
// run in order: "v"/"vs", then "@"/"at", then two bare tokens, then
// date-only with sentinel team/opponent. ok is false only when no
// MM.DD.YY-shaped date can be located at all.
func ParseLabel(label string) (date, team, opponent string, ok bool) {
	loc := datePattern.FindStringIndex(label)
	if loc == nil {
		return "", "", "", false
	}

	date = normalizeDate(label[loc[0]:loc[1]])
	rest := strings.TrimSpace(label[loc[1]:])
	rest = stripLabelNoise(rest)

	if rest == "" {
		return date, DefaultTeam, UnknownOpponent, true
	}

	for _, sep := range []string{" v ", " vs ", " V ", " Vs ", " VS "} {
		if t, o, found := splitOnce(rest, sep); found {
			return date, t, o, true
		}
	}
	for _, sep := range []string{" @ ", " at ", " At "} {
		if t, o, found := splitOnce(rest, sep); found {
			return date, t, o, true
		}
	}

	// Two bare tokens: "10.06.25 Heat Bucks".
	tokens := strings.Fields(rest)
	if len(tokens) >= 2 {
		return date, tokens[0], strings.Join(tokens[1:], " "), true
	}
	if len(tokens) == 1 {
		return date, tokens[0], UnknownOpponent, true
	}
	return date, DefaultTeam, UnknownOpponent, true
}

// DateStringToTimestamp parses MM.DD.YY into epoch seconds at local midnight
// of the game date. Two-digit years are expanded by adding 2000. ok is false
// on malformed input: wrong segment count, non-numeric segments, or an
// impossible calendar date.
func DateStringToTimestamp(dateString string) (int64, bool) {
	parts := strings.Split(strings.TrimSpace(dateString), ".")
	if len(parts) != 3 {
		return 0, false
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, false
	}
	if year < 100 {
		year += 2000
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// time.Date normalizes overflow (e.g. Feb 30 -> Mar 2); reject those.
	if int(t.Month()) != month || t.Day() != day || t.Year() != year {
		return 0, false
	}

	return t.Unix(), true
}

// normalizeDate zero-pads the month and day segments so "1.6.25" and
// "01.06.25" label the same game.
func normalizeDate(date string) string {
	parts := strings.Split(date, ".")
	if len(parts) != 3 {
		return date
	}
	month, merr := strconv.Atoi(parts[0])
	day, derr := strconv.Atoi(parts[1])
	if merr != nil || derr != nil {
		return date
	}
	return fmt.Sprintf("%02d.%02d.%s", month, day, parts[2])
}

func splitOnce(s, sep string) (left, right string, found bool) {
	idx := strings.Index(s, sep)
	if idx < 0 {
		return "", "", false
	}
	left = strings.TrimSpace(s[:idx])
	right = strings.TrimSpace(s[idx+len(sep):])
	if left == "" || right == "" {
		return "", "", false
	}
	return left, right, true
}

// stripLabelNoise removes the file extension and trailing parenthesized
// qualifiers exporters append, e.g. "Heat v Bucks(team).csv" -> "Heat v Bucks".
func stripLabelNoise(s string) string {
	s = strings.TrimSuffix(s, ".csv")
	s = strings.TrimSuffix(s, ".CSV")
	if idx := strings.Index(s, "("); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
