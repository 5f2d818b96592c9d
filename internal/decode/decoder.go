package decode

import (
	"regexp"
	"sort"
	"strings"
)

// Collector receives identifiers the decoder had to return verbatim.
// Callers that want telemetry on undecoded codes opt in explicitly; there
// is no shared module state.
type Collector func(code string)

// Numeric-looking identifier families, most specific first. All of them
// resolve to the same network, but the precedence is kept explicit so a
// narrower pattern is never shadowed by a broader one.
var numericPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+_reward-\d+$`),
	regexp.MustCompile(`^\d+_[A-Z]+-\d+$`),
	regexp.MustCompile(`^\d+_\d+-\d+-\w+$`),
	regexp.MustCompile(`^\d+_[a-z]+$`),
	regexp.MustCompile(`^\d+_\d+$`),
	regexp.MustCompile(`^\d+_$`),
	regexp.MustCompile(`^\d+$`),
}

// Structural fallbacks for two opaque-token families that never made it
// into the exact tables.
var (
	ironSourceToken = regexp.MustCompile(`^[A-Za-z0-9]{12,22}=$`)
	vungleToken     = regexp.MustCompile(`^Vy[A-Za-z0-9+/=]{12,}$`)
)

// short codes ordered longest-first so the prefix/suffix scan prefers the
// more specific code
var orderedCodes = func() []string {
	codes := make([]string, 0, len(networkCodes))
	for c := range networkCodes {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool {
		if len(codes[i]) != len(codes[j]) {
			return len(codes[i]) > len(codes[j])
		}
		return codes[i] < codes[j]
	})
	return codes
}()

// Network decodes a raw ad-network or publisher identifier to a
// human-readable network name. It is deterministic, pure and total: if no
// rule matches, the cleaned input is returned unchanged so unknown codes
// stay visible in the dashboard instead of collapsing to "Unknown".
func Network(code string) string {
	return NetworkWith(code, nil)
}

// NetworkWith is Network with an optional collector for undecoded codes.
func NetworkWith(code string, undecoded Collector) string {
	cleaned := stripArtifacts(code)
	if cleaned == "" {
		return code
	}

	// Exact tables first. Several short codes are prefixes of longer
	// base64 tokens, so pattern rules must never run before these.
	if name, ok := networkCodes[cleaned]; ok {
		return name
	}
	if name, ok := networkCodes[strings.ToUpper(cleaned)]; ok {
		return name
	}
	if name, ok := opaqueTokens[cleaned]; ok {
		return name
	}
	if name, ok := ptsdkTokens[strings.ToUpper(cleaned)]; ok {
		return name
	}

	for prefix, name := range forcedPrefixes {
		if strings.HasPrefix(strings.ToUpper(cleaned), prefix+"_") {
			return name
		}
	}

	for _, p := range numericPatterns {
		if p.MatchString(cleaned) {
			return numericNetwork
		}
	}

	if name, ok := scanCodeAffixes(cleaned); ok {
		return name
	}

	if ironSourceToken.MatchString(cleaned) {
		return "ironSource"
	}
	if vungleToken.MatchString(cleaned) {
		return "Vungle"
	}

	if undecoded != nil {
		undecoded(cleaned)
	}
	return cleaned
}

// scanCodeAffixes checks whether the code starts or ends with a known short
// code on a token boundary ("SCE_slingo_us", "summer_TPJ"). The boundary
// requirement keeps already-decoded names like "Catbyte" from matching the
// "CAT"-style prefixes of their own code set.
func scanCodeAffixes(code string) (string, bool) {
	upper := strings.ToUpper(code)
	for _, c := range orderedCodes {
		if strings.HasPrefix(upper, c) {
			rest := code[len(c):]
			if rest == "" || rest[0] == '_' || rest[0] == '-' || isDigit(rest[0]) {
				return networkCodes[c], true
			}
		}
		if strings.HasSuffix(upper, c) {
			head := code[:len(code)-len(c)]
			if head == "" || head[len(head)-1] == '_' || head[len(head)-1] == '-' {
				return networkCodes[c], true
			}
		}
	}
	return "", false
}

// stripArtifacts peels upstream export junk off the identifier: anything
// after a comma (",undefined" tails) and trailing "creative=..." segments.
// Iterative rather than recursive; the loop runs until the value is stable.
func stripArtifacts(code string) string {
	s := strings.TrimSpace(code)
	for {
		prev := s
		if i := strings.Index(s, ","); i >= 0 {
			s = s[:i]
		}
		if i := strings.Index(s, "creative="); i >= 0 {
			s = strings.TrimRight(s[:i], "_-&?")
		}
		s = strings.TrimSpace(s)
		if s == prev {
			return s
		}
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// NormalizePublisher decodes a raw publisher identifier with the sentinel
// rules the dashboard needs: decoding absence (empty input, literal
// "unknown"/"test") is distinct from decoding failure, which stays verbatim.
func NormalizePublisher(raw string) string {
	return NormalizePublisherWith(raw, nil)
}

// NormalizePublisherWith is NormalizePublisher with an undecoded-code collector.
func NormalizePublisherWith(raw string, undecoded Collector) string {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		return "Unknown"
	case strings.EqualFold(trimmed, "unknown"):
		return "Unknown"
	case strings.EqualFold(trimmed, "test"):
		return "Test"
	}
	return NetworkWith(trimmed, undecoded)
}
