package decode

import "strings"

// Facets are the dimensions decoded from a composite campaign-network key.
// Secondary facets (event type, publisher, creative format, targeting,
// audience, date code) are only populated by the structured pipe-delimited
// form; the positional form reliably yields platform, country, campaign
// type and ad network only.
type Facets struct {
	Platform       string `json:"platform"`
	Country        string `json:"country"`
	AdNetwork      string `json:"adnetwork"`
	CampaignType   string `json:"campaign_type"`
	EventType      string `json:"event_type"`
	Publisher      string `json:"publisher"`
	CreativeFormat string `json:"creative_format"`
	Targeting      string `json:"targeting"`
	Audience       string `json:"audience"`
	DateCode       string `json:"date_code"`
}

const (
	PlatformAndroid = "Android"
	PlatformIOS     = "iOS"
	PlatformUnknown = "Unknown"

	// CountryNoData signals absence of country information, distinct from
	// classification failure ("Unknown").
	CountryNoData = "No data"
)

// Strict platform tokens. Anything outside these sets is never treated as a
// platform; conflicting tokens across positions collapse to Unknown rather
// than guessing.
var (
	androidTokens = map[string]bool{"android": true, "and": true, "andr": true, "aos": true}
	iosTokens     = map[string]bool{"ios": true, "iph": true, "iphone": true, "ipad": true}
)

var campaignTypes = map[string]bool{"CPA": true, "CPI": true, "CPE": true, "CPM": true, "CPC": true}

// ParseCampaignKey parses a composite campaign-network key into facets.
func ParseCampaignKey(key string) Facets {
	return ParseCampaignKeyWith(key, nil)
}

// ParseCampaignKeyWith is ParseCampaignKey with an undecoded-code collector
// passed through to the identifier decoder.
func ParseCampaignKeyWith(key string, undecoded Collector) Facets {
	f := Facets{
		Platform:       PlatformUnknown,
		Country:        "Unknown",
		AdNetwork:      "Unknown",
		CampaignType:   "Unknown",
		EventType:      "Unknown",
		Publisher:      "Unknown",
		CreativeFormat: "Unknown",
		Targeting:      "Unknown",
		Audience:       "Unknown",
		DateCode:       "Unknown",
	}

	key = strings.TrimSpace(key)
	if key == "" {
		f.Country = CountryNoData
		return f
	}

	if strings.Contains(key, "|") && strings.Contains(key, ":") {
		parseStructured(key, &f, undecoded)
		return f
	}
	parsePositional(key, &f, undecoded)
	return f
}

// parseStructured handles the "k:v|k:v" form. Unknown keys are ignored;
// missing keys keep the Unknown default.
func parseStructured(key string, f *Facets, undecoded Collector) {
	for _, segment := range strings.Split(key, "|") {
		kv := strings.SplitN(segment, ":", 2)
		if len(kv) != 2 {
			continue
		}
		k := strings.ToLower(strings.TrimSpace(kv[0]))
		v := strings.TrimSpace(kv[1])
		if v == "" {
			continue
		}
		switch k {
		case "p":
			f.Platform = normalizePlatform(v)
		case "g":
			if name, ok := ExpandCountry(v); ok {
				f.Country = name
			} else {
				f.Country = v
			}
		case "a":
			f.AdNetwork = NetworkWith(v, undecoded)
		case "ct":
			f.CampaignType = v
		case "e":
			f.EventType = v
		case "s":
			f.Publisher = v
		case "cf":
			f.CreativeFormat = v
		case "t":
			f.Targeting = v
		case "au":
			f.Audience = v
		case "d":
			f.DateCode = v
		}
	}
}

// parsePositional handles the underscore/hyphen-delimited form. The first
// part is reserved for the game name and never classified.
func parsePositional(key string, f *Facets, undecoded Collector) {
	f.Country = CountryNoData

	parts := strings.Split(key, "_")
	if len(parts) < 2 {
		parts = strings.Split(key, "-")
	}
	if len(parts) < 2 {
		return
	}

	classified := make([]bool, len(parts))
	var androidSeen, iosSeen bool
	countryName := ""

	for i := 1; i < len(parts); i++ {
		tok := strings.TrimSpace(parts[i])
		low := strings.ToLower(tok)
		switch {
		case androidTokens[low]:
			androidSeen = true
			classified[i] = true
		case iosTokens[low]:
			iosSeen = true
			classified[i] = true
		case f.CampaignType == "Unknown" && campaignTypes[strings.ToUpper(tok)]:
			f.CampaignType = strings.ToUpper(tok)
			classified[i] = true
		case countryName == "":
			if name, ok := CountryName(tok); ok {
				countryName = name
				classified[i] = true
			}
		}
	}

	// Literal 2-3 letter fallback, excluding the last part which is the
	// preferred ad-network position.
	if countryName == "" {
		for i := 1; i < len(parts)-1; i++ {
			if classified[i] {
				continue
			}
			if countryCandidate(parts[i]) {
				countryName = strings.ToUpper(parts[i])
				classified[i] = true
				break
			}
		}
	}
	if countryName != "" {
		f.Country = countryName
	}

	switch {
	case androidSeen && iosSeen:
		f.Platform = PlatformUnknown
	case androidSeen:
		f.Platform = PlatformAndroid
	case iosSeen:
		f.Platform = PlatformIOS
	}

	// Ad network: prefer the last part, otherwise scan backward skipping
	// classified positions and repeats of the game name.
	pick := -1
	last := len(parts) - 1
	if last > 0 && !classified[last] && !strings.EqualFold(parts[last], parts[0]) {
		pick = last
	} else {
		for i := last - 1; i >= 1; i-- {
			if classified[i] || strings.EqualFold(parts[i], parts[0]) {
				continue
			}
			pick = i
			break
		}
	}
	if pick >= 0 {
		f.AdNetwork = NetworkWith(parts[pick], undecoded)
		classified[pick] = true
	}

	// No confident platform: expose the best raw candidate rather than
	// silently reporting Unknown.
	if !androidSeen && !iosSeen {
		for i := 1; i < len(parts); i++ {
			if classified[i] || strings.EqualFold(parts[i], parts[0]) {
				continue
			}
			f.Platform = strings.TrimSpace(parts[i])
			break
		}
	}
}

// normalizePlatform maps a structured "p:" value to the canonical platform
// labels, passing unrecognized values through raw.
func normalizePlatform(value string) string {
	low := strings.ToLower(strings.TrimSpace(value))
	switch {
	case androidTokens[low]:
		return PlatformAndroid
	case iosTokens[low]:
		return PlatformIOS
	default:
		return value
	}
}
