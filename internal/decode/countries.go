package decode

import "strings"

// countryNames maps lowercase ISO alpha-2 codes (plus common aliases from
// the exports) to full country names.
var countryNames = map[string]string{
	"ad":  "Andorra",
	"ae":  "United Arab Emirates",
	"af":  "Afghanistan",
	"al":  "Albania",
	"am":  "Armenia",
	"ao":  "Angola",
	"ar":  "Argentina",
	"at":  "Austria",
	"au":  "Australia",
	"az":  "Azerbaijan",
	"ba":  "Bosnia and Herzegovina",
	"bd":  "Bangladesh",
	"be":  "Belgium",
	"bf":  "Burkina Faso",
	"bg":  "Bulgaria",
	"bh":  "Bahrain",
	"bj":  "Benin",
	"bn":  "Brunei",
	"bo":  "Bolivia",
	"br":  "Brazil",
	"bw":  "Botswana",
	"by":  "Belarus",
	"bz":  "Belize",
	"ca":  "Canada",
	"cd":  "Democratic Republic of the Congo",
	"cg":  "Republic of the Congo",
	"ch":  "Switzerland",
	"ci":  "Ivory Coast",
	"cl":  "Chile",
	"cm":  "Cameroon",
	"cn":  "China",
	"co":  "Colombia",
	"cr":  "Costa Rica",
	"cy":  "Cyprus",
	"cz":  "Czechia",
	"de":  "Germany",
	"dk":  "Denmark",
	"do":  "Dominican Republic",
	"dz":  "Algeria",
	"ec":  "Ecuador",
	"ee":  "Estonia",
	"eg":  "Egypt",
	"es":  "Spain",
	"et":  "Ethiopia",
	"fi":  "Finland",
	"fr":  "France",
	"ga":  "Gabon",
	"gb":  "United Kingdom",
	"ge":  "Georgia",
	"gh":  "Ghana",
	"gr":  "Greece",
	"gt":  "Guatemala",
	"hk":  "Hong Kong",
	"hn":  "Honduras",
	"hr":  "Croatia",
	"ht":  "Haiti",
	"hu":  "Hungary",
	"id":  "Indonesia",
	"ie":  "Ireland",
	"il":  "Israel",
	"in":  "India",
	"iq":  "Iraq",
	"ir":  "Iran",
	"is":  "Iceland",
	"it":  "Italy",
	"jm":  "Jamaica",
	"jo":  "Jordan",
	"jp":  "Japan",
	"ke":  "Kenya",
	"kg":  "Kyrgyzstan",
	"kh":  "Cambodia",
	"kr":  "South Korea",
	"kw":  "Kuwait",
	"kz":  "Kazakhstan",
	"la":  "Laos",
	"lb":  "Lebanon",
	"lk":  "Sri Lanka",
	"lt":  "Lithuania",
	"lu":  "Luxembourg",
	"lv":  "Latvia",
	"ly":  "Libya",
	"ma":  "Morocco",
	"md":  "Moldova",
	"me":  "Montenegro",
	"mg":  "Madagascar",
	"mk":  "North Macedonia",
	"ml":  "Mali",
	"mm":  "Myanmar",
	"mn":  "Mongolia",
	"mo":  "Macao",
	"mt":  "Malta",
	"mu":  "Mauritius",
	"mv":  "Maldives",
	"mx":  "Mexico",
	"my":  "Malaysia",
	"mz":  "Mozambique",
	"na":  "Namibia",
	"ne":  "Niger",
	"ng":  "Nigeria",
	"ni":  "Nicaragua",
	"nl":  "Netherlands",
	"no":  "Norway",
	"np":  "Nepal",
	"nz":  "New Zealand",
	"om":  "Oman",
	"pa":  "Panama",
	"pe":  "Peru",
	"pg":  "Papua New Guinea",
	"ph":  "Philippines",
	"pk":  "Pakistan",
	"pl":  "Poland",
	"pr":  "Puerto Rico",
	"pt":  "Portugal",
	"py":  "Paraguay",
	"qa":  "Qatar",
	"ro":  "Romania",
	"rs":  "Serbia",
	"ru":  "Russia",
	"rw":  "Rwanda",
	"sa":  "Saudi Arabia",
	"sd":  "Sudan",
	"se":  "Sweden",
	"sg":  "Singapore",
	"si":  "Slovenia",
	"sk":  "Slovakia",
	"sn":  "Senegal",
	"so":  "Somalia",
	"sv":  "El Salvador",
	"sy":  "Syria",
	"th":  "Thailand",
	"tj":  "Tajikistan",
	"tm":  "Turkmenistan",
	"tn":  "Tunisia",
	"tr":  "Turkey",
	"tt":  "Trinidad and Tobago",
	"tw":  "Taiwan",
	"tz":  "Tanzania",
	"ua":  "Ukraine",
	"ug":  "Uganda",
	"us":  "United States",
	"uy":  "Uruguay",
	"uz":  "Uzbekistan",
	"ve":  "Venezuela",
	"vn":  "Vietnam",
	"ye":  "Yemen",
	"za":  "South Africa",
	"zm":  "Zambia",
	"zw":  "Zimbabwe",

	// aliases seen in campaign keys
	"uk":  "United Kingdom",
	"usa": "United States",
	"uae": "United Arab Emirates",
	"ksa": "Saudi Arabia",
	"kor": "South Korea",
	"jpn": "Japan",
	"ger": "Germany",
	"bra": "Brazil",
	"mex": "Mexico",
	"ind": "India",
	"idn": "Indonesia",
	"vnm": "Vietnam",
	"tur": "Turkey",
	"row": "Rest of World",
	"ww":  "Worldwide",
	"all": "Worldwide",
}

// countryExclusions are tokens that would otherwise look like country codes
// but collide with platform tokens or known ad-network short codes. They are
// never classified as countries.
var countryExclusions = func() map[string]bool {
	ex := map[string]bool{
		"and": true,
		"aos": true,
		"ios": true,
		"cpa": true,
		"cpi": true,
		"cpe": true,
		"cpm": true,
		"cpc": true,
	}
	for code := range networkCodes {
		ex[strings.ToLower(code)] = true
	}
	return ex
}()

// ExpandCountry resolves a country code to its full name without the
// positional-scan exclusions. Used where context already says the value is a
// country, e.g. the structured "g:" key.
func ExpandCountry(token string) (string, bool) {
	name, ok := countryNames[strings.ToLower(strings.TrimSpace(token))]
	return name, ok
}

// CountryName resolves a campaign-key token to a full country name.
func CountryName(token string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	if countryExclusions[t] {
		return "", false
	}
	name, ok := countryNames[t]
	return name, ok
}

// countryCandidate reports whether an otherwise-unmatched token is accepted
// as a literal country code: 2-3 letters and not colliding with any other
// classification.
func countryCandidate(token string) bool {
	t := strings.ToLower(token)
	if len(t) < 2 || len(t) > 3 {
		return false
	}
	if countryExclusions[t] {
		return false
	}
	for _, r := range t {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
