package justice

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cytora/cz-company-lambda/internal/company"
)

// amount matches "200 000", "200.000", "200 000,-" and "200 000,00" before Kč.
const amount = `(\d[\d\s.]*?)\s*(?:,[-–\d]*)?\s*Kč`

// role matches member labels such as "jednatel:" or "člen představenstva:".
const role = `(?:^|[^\p{L}])(?:jednatel|člen|předseda|místopředseda)(?:\s[^:,.]{0,40})?:`

var (
	fileRefPattern     = regexp.MustCompile(`(?i)spisová\s+značka\s*[:\-]?\s*([A-Z]\s*\d+(?:/[A-Z]+)?)`)
	sectionPattern     = regexp.MustCompile(`(?i)oddíl\s*([A-Z])\s*,?\s*vložka\s*(\d+)`)
	fileRefShape       = regexp.MustCompile(`^([A-Za-z])\s*(\d+)(/[A-Za-z]+)?$`)
	courtPatterns      = []*regexp.Regexp{regexp.MustCompile(`(?i)zapsan[áé]\s+u\s+([^,.]+?)[,.]`), regexp.MustCompile(`(?i)veden[áé]\s+u\s+([^,.]+?)[,.]`)}
	courtEntrySuffix   = regexp.MustCompile(`(?i)\s*(?:den|datum)\s+zápisu.*$`)
	capitalPattern     = regexp.MustCompile(`(?i)základní\s+kapitál\s*[:\-]?\s*` + amount)
	contributionAmount = regexp.MustCompile(`(?i)(?:výše\s+vkladu|vklad)\s*[:\-]?\s*` + amount)

	actingRuleLabel    = regexp.MustCompile(`(?i)způsob\s+jednání(?:\s+za\s+společnost)?\s*[:\-]?\s*`)
	actingRuleFallback = regexp.MustCompile(`(?i)jednatel\p{L}*.*?(?:jednají|jedná)\s+za\s+společnost\s*:?`)
	actingRuleEnd      = regexp.MustCompile(`(?i)statutární\s+orgán|společníci|společník\s*:|akcionáři|akcionář\s*:|základní\s+kapitál|předmět\s+(?:podnikání|činnosti)|dozorčí\s+rada|prokura|ostatní\s+skutečnosti|likvidace|` + role)

	statutoryStart = regexp.MustCompile(`(?i)statutární\s+orgán|jednatelé?|představenstvo|správní\s+rada`)
	statutoryEnd   = regexp.MustCompile(`(?i)společníci?|akcionáři|základní\s+kapitál|předmět|sídlo|likvidace|způsob\s+jednání|dozorčí\s+rada|prokura|ostatní\s+skutečnosti`)
	roleLabel      = regexp.MustCompile(`(?i)` + role)
	appointedOn    = regexp.MustCompile(`(?i)(?:den\s+)?vzniku?\s+(?:funkce|členství)\s*:?\s*(\d{1,2}\.\s*(?:\d{1,2}\.|\p{L}+)\s*\d{4})`)
	birthDate      = regexp.MustCompile(`(?i)dat\.\s*nar\.\s*\d{1,2}\.\s*(?:\d{1,2}\.|\p{L}+)\s*\d{4}`)
	birthDateNext  = regexp.MustCompile(`(?i)^\s*,?\s*dat\.\s*nar\.`)
	addressEnd     = regexp.MustCompile(`(?i)(?:den\s+)?vzniku?\s+(?:funkce|členství)|;`)
	houseNumber    = regexp.MustCompile(`^\s+\d`)

	ownersStart        = regexp.MustCompile(`(?i)společníci?|akcionáři`)
	ownersEnd          = regexp.MustCompile(`(?i)základní\s+kapitál|statutární|předmět|likvidace|dozorčí\s+rada|prokura|ostatní\s+skutečnosti`)
	ownerLabel         = regexp.MustCompile(`(?i)(?:společník|akcionář)\s*:`)
	ownerItemSeparator = regexp.MustCompile(`;|\s{2,}`)
	ownerClause        = regexp.MustCompile(`(?i)společník[^.]*?(?:jméno|název)?[^.]*?(?:vklad|výše\s+vkladu)\s*[\d\s.]+(?:\s*Kč)?`)
	entityName         = regexp.MustCompile(`(\p{Lu}[\p{L}\d&'\- ]*?),?\s+(s\.\s*r\.\s*o\.|spol\.\s*s\s*r\.\s*o\.|a\.\s*s\.|k\.\s*s\.|v\.\s*o\.\s*s\.|z\.\s*s\.|SE\b)`)

	capitalizedWord = regexp.MustCompile(`\p{Lu}[\p{L}'\-]*`)

	nameLabel    = regexp.MustCompile(`(?i)obchodní\s+firma\s*:\s*`)
	addressLabel = regexp.MustCompile(`(?i)sídlo\s*:\s*`)
	basicEnd     = regexp.MustCompile(`(?i)obchodní\s+firma\s*:|sídlo\s*:|identifikační\s+číslo|právní\s+forma|předmět\s+(?:podnikání|činnosti)|statutární\s+orgán|jednatel\p{L}*\s*:|představenstvo|správní\s+rada|společníci|datum\s+(?:vzniku|zápisu)|spisová\s+značka|den\s+zápisu`)
	icoPattern   = regexp.MustCompile(`(?i)identifikační\s+číslo\s*:?\s*(\d[\d\s]{6,10}\d)`)
	datePattern  = regexp.MustCompile(`(?i)datum\s+(?:vzniku\s+a\s+)?zápisu\s*:?\s*(\d{1,2}\.\s*(?:\d{1,2}\.|\p{L}+)\s*\d{4})`)
)

// Words that are capitalized in register pages but never part of a name.
var labelWords = map[string]bool{
	"jednatel": true, "jednatelé": true, "jednatelka": true, "předseda": true, "předsedkyně": true,
	"místopředseda": true, "místopředsedkyně": true, "člen": true, "členka": true, "členové": true,
	"statutární": true, "orgán": true, "představenstvo": true, "představenstva": true, "správní": true,
	"rada": true, "dozorčí": true, "den": true, "datum": true, "vznik": true, "vzniku": true,
	"zánik": true, "funkce": true, "členství": true, "společník": true, "společníci": true,
	"akcionář": true, "akcionáři": true, "bydliště": true, "sídlo": true, "vklad": true,
	"splaceno": true, "podíl": true, "obchodní": true, "způsob": true, "jednání": true,
	"počet": true, "členů": true, "identifikační": true, "číslo": true, "spisová": true,
	"značka": true, "zapsáno": true, "prokura": true, "prokurista": true, "ostatní": true,
	"skutečnosti": true, "základní": true, "kapitál": true, "právní": true, "forma": true,
}

// Extract maps the flattened text of a register page onto a partial record.
// Every field is optional and extracted independently.
func Extract(text string) *company.Partial {
	label, members := governingBody(text)
	return &company.Partial{
		Source:             company.SourceCourt,
		Name:               company.String(after(text, nameLabel, basicEnd)),
		RegistrationID:     registrationID(text),
		Address:            company.String(after(text, addressLabel, basicEnd)),
		IncorporationDate:  incorporationDate(text),
		Court:              court(text),
		FileReference:      fileReference(text),
		RegisteredCapital:  capital(text),
		ActingRule:         actingRule(text),
		GoverningBodyLabel: label,
		GoverningBody:      members,
		Owners:             owners(text),
	}
}

func fileReference(text string) *string {
	if m := fileRefPattern.FindStringSubmatch(text); m != nil {
		ref := strings.Join(strings.Fields(m[1]), " ")
		if p := fileRefShape.FindStringSubmatch(ref); p != nil {
			ref = strings.ToUpper(p[1]) + " " + p[2] + p[3]
		}
		return &ref
	}
	if m := sectionPattern.FindStringSubmatch(text); m != nil {
		ref := strings.ToUpper(m[1]) + " " + m[2]
		return &ref
	}
	return nil
}

func court(text string) *string {
	for _, p := range courtPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		name := courtEntrySuffix.ReplaceAllString(strings.TrimSpace(m[1]), "")
		return company.String(upTo(name, basicEnd))
	}
	return nil
}

func capital(text string) *int64 {
	m := capitalPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return parseAmount(m[1])
}

func parseAmount(raw string) *int64 {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func actingRule(text string) *string {
	if rule := after(text, actingRuleLabel, actingRuleEnd); rule != "" {
		return &rule
	}
	loc := actingRuleFallback.FindStringIndex(text)
	if loc == nil {
		return nil
	}
	rule := upTo(text[loc[1]:], actingRuleEnd)
	if rule == "" {
		rule = strings.TrimSpace(text[loc[0]:loc[1]])
	}
	return company.String(rule)
}

func registrationID(text string) *string {
	m := icoPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	id := strings.Join(strings.Fields(m[1]), "")
	if !company.ValidRegistrationID(id) {
		return nil
	}
	return &id
}

func incorporationDate(text string) *string {
	m := datePattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return company.NormalizeDate(m[1])
}

// governingBody returns the display label and the members listed in the
// statutory body section.
func governingBody(text string) (string, []company.Member) {
	segment, heading := between(text, statutoryStart, statutoryEnd)
	if segment == "" {
		return company.DefaultGoverningBodyLabel, []company.Member{}
	}
	label := bodyLabel(heading)
	if label == company.DefaultGoverningBodyLabel {
		label = bodyLabel(segment[len(heading):])
	}
	var spans []nameSpan
	for _, span := range personNames(segment) {
		if !houseNumber.MatchString(segment[span.end:]) {
			spans = append(spans, span)
		}
	}
	var members []company.Member
	if roles := roleLabel.FindAllStringIndex(segment, -1); len(roles) > 0 {
		members = roleMembers(segment, spans, roles)
	} else {
		members = listedMembers(segment, spans)
	}
	return label, company.NormalizeMembers(members)
}

// roleMembers takes the first name after every member label. The rest of the
// block up to the next label holds that member's address and dates.
func roleMembers(segment string, spans []nameSpan, roles [][]int) []company.Member {
	members := make([]company.Member, 0, len(roles))
	for i, r := range roles {
		end := len(segment)
		if i+1 < len(roles) {
			end = roles[i+1][0]
		}
		for _, span := range spans {
			if span.start >= r[1] && span.end <= end {
				members = append(members, member(segment, span, end))
				break
			}
		}
	}
	return members
}

// listedMembers handles sections without member labels. Names inside an
// address, between a birth date and the next appointment date or ";", are
// skipped.
func listedMembers(segment string, spans []nameSpan) []company.Member {
	addresses := addressRanges(segment)
	var kept []nameSpan
	for _, span := range spans {
		if !within(addresses, span.start) || birthDateNext.MatchString(segment[span.end:]) {
			kept = append(kept, span)
		}
	}
	members := make([]company.Member, 0, len(kept))
	for i, span := range kept {
		end := len(segment)
		if i+1 < len(kept) {
			end = kept[i+1].start
		}
		members = append(members, member(segment, span, end))
	}
	return members
}

// member reads the appointment date between the name and end.
func member(segment string, span nameSpan, end int) company.Member {
	m := company.Member{Name: span.text}
	if d := appointedOn.FindStringSubmatch(segment[span.end:end]); d != nil {
		m.AppointedOn = company.NormalizeDate(d[1])
	}
	return m
}

func addressRanges(segment string) [][2]int {
	var out [][2]int
	births := birthDate.FindAllStringIndex(segment, -1)
	for i, b := range births {
		end := len(segment)
		if i+1 < len(births) {
			end = births[i+1][0]
		}
		if loc := addressEnd.FindStringIndex(segment[b[1]:end]); loc != nil {
			end = b[1] + loc[0]
		}
		out = append(out, [2]int{b[1], end})
	}
	return out
}

func within(ranges [][2]int, pos int) bool {
	for _, r := range ranges {
		if pos >= r[0] && pos < r[1] {
			return true
		}
	}
	return false
}

func bodyLabel(s string) string {
	lower := strings.ToLower(s)
	for _, c := range []struct{ token, label string }{
		{"jednatel", "Jednatelé"},
		{"představenstv", "Představenstvo"},
		{"správní rad", "Správní rada"},
	} {
		if strings.Contains(lower, c.token) {
			return c.label
		}
	}
	return company.DefaultGoverningBodyLabel
}

func owners(text string) []company.Owner {
	out := []company.Owner{}
	if segment, _ := between(text, ownersStart, ownersEnd); segment != "" {
		out = append(out, ownersFrom(segment)...)
	}
	if len(out) > 0 {
		return out
	}
	for _, clause := range ownerClause.FindAllString(text, -1) {
		out = append(out, ownersFrom(clause)...)
	}
	return out
}

func ownersFrom(segment string) []company.Owner {
	segment = ownerLabel.ReplaceAllStringFunc(segment, func(label string) string {
		return ";" + label
	})
	var out []company.Owner
	for _, item := range ownerItemSeparator.Split(segment, -1) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		var o company.Owner
		if m := entityName.FindStringSubmatch(item); m != nil {
			o.Name = company.String(strings.TrimSpace(m[1]) + " " + strings.Join(strings.Fields(m[2]), ""))
		} else if names := personNames(item); len(names) > 0 {
			o.Name = company.String(names[0].text)
		}
		if m := contributionAmount.FindStringSubmatch(item); m != nil {
			o.Contribution = parseAmount(m[1])
		}
		if o.Name != nil || o.Contribution != nil {
			out = append(out, o)
		}
	}
	return out
}

type nameSpan struct {
	text       string
	start, end int
}

// personNames finds runs of two or three capitalized words separated only by
// whitespace. Label words split runs, and longer runs yield a name per three
// words, the way a repeated pattern match would.
func personNames(s string) []nameSpan {
	var out []nameSpan
	var run [][]int
	flush := func() {
		for len(run) >= 2 {
			n := len(run)
			if n > 3 {
				n = 3
			}
			start, end := run[0][0], run[n-1][1]
			out = append(out, nameSpan{text: strings.Join(strings.Fields(s[start:end]), " "), start: start, end: end})
			run = run[n:]
		}
		run = nil
	}
	for _, loc := range capitalizedWord.FindAllStringIndex(s, -1) {
		if loc[0] > 0 {
			prev, _ := utf8.DecodeLastRuneInString(s[:loc[0]])
			if unicode.IsLetter(prev) || unicode.IsDigit(prev) {
				flush()
				continue
			}
		}
		if loc[1] < len(s) {
			next, _ := utf8.DecodeRuneInString(s[loc[1]:])
			if unicode.IsDigit(next) {
				flush()
				continue
			}
		}
		if labelWords[strings.ToLower(s[loc[0]:loc[1]])] {
			flush()
			continue
		}
		if len(run) > 0 && strings.TrimSpace(s[run[len(run)-1][1]:loc[0]]) != "" {
			flush()
		}
		run = append(run, loc)
	}
	flush()
	return out
}

// between returns text from the first match of start up to the first match
// of end after it (or the end of text), together with the matched heading.
func between(text string, start, end *regexp.Regexp) (segment, heading string) {
	loc := start.FindStringIndex(text)
	if loc == nil {
		return "", ""
	}
	heading = text[loc[0]:loc[1]]
	rest := text[loc[1]:]
	if e := end.FindStringIndex(rest); e != nil {
		rest = rest[:e[0]]
	}
	return text[loc[0]:loc[1]] + rest, heading
}

// after returns the trimmed text following the first match of label, up to
// the first match of end.
func after(text string, label, end *regexp.Regexp) string {
	loc := label.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	return upTo(text[loc[1]:], end)
}

func upTo(text string, end *regexp.Regexp) string {
	if e := end.FindStringIndex(text); e != nil {
		text = text[:e[0]]
	}
	return strings.TrimSpace(text)
}
