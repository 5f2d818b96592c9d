package decode

// The tables in this file drive the identifier decoder. Exact-match tables
// are kept separate from the pattern rules in decoder.go so that precedence
// (exact match always first) is enforced structurally: several short codes
// are also valid prefixes of longer base64 tokens.
//
// Canonical network names must never appear as table keys, keeping the
// decoder idempotent on already-decoded names.

// networkCodes maps short alphabetic campaign codes to network names.
var networkCodes = map[string]string{
	"SCE": "Catbyte",
	"APL": "AppLovin",
	"ALV": "AppLovin",
	"UNI": "Unity Ads",
	"UNT": "Unity Ads",
	"IRS": "ironSource",
	"ISG": "ironSource",
	"MTG": "Mintegral",
	"MBR": "Mintegral",
	"VGL": "Vungle",
	"VUN": "Vungle",
	"ADC": "AdColony",
	"CHB": "Chartboost",
	"CBT": "Chartboost",
	"MOL": "Moloco",
	"MLC": "Moloco",
	"LFT": "Liftoff",
	"LIF": "Liftoff",
	"TPJ": "Tapjoy",
	"TJY": "Tapjoy",
	"FYB": "Fyber",
	"INM": "InMobi",
	"IMB": "InMobi",
	"PGL": "Pangle",
	"PNG": "Pangle",
	"TTB": "TikTok for Business",
	"TIK": "TikTok for Business",
	"GGL": "Google Ads",
	"GUA": "Google Ads",
	"FBM": "Meta Ads",
	"MET": "Meta Ads",
	"SNP": "Snapchat",
	"SNA": "Snapchat",
	"KWA": "Kwai for Business",
	"BGO": "Bigo Ads",
	"SMX": "Smadex",
	"SMA": "Smadex",
	"ARK": "Aarki",
	"RMG": "Remerge",
	"ADT": "Adikteev",
	"YAP": "YouAppi",
	"JMP": "Jampp",
	"CRI": "Criteo",
	"CRO": "CrossInstall",
	"ZCK": "Zucks",
	"ADA": "AdAction",
	"PRS": "Persona.ly",
	"SAB": "Sabio",
	"ASM": "AppSamurai",
	"PTL": "Petal Ads",
	"XMI": "Xiaomi GetApps",
	"OPP": "Oppo Ads",
	"VIV": "Vivo Ads",
	"HUA": "Huawei Ads",
	"MSW": "Mistplay",
	"AJO": "adjoe",
	"ALK": "AppLike",
	"ALM": "Almedia",
	"LTB": "Lootably",
	"IFM": "Influence Mobile",
	"RWP": "Rewarded Play",
	"JTK": "JustTrack",
	"AYT": "ayeT-Studios",
	"FLU": "Fluent",
	"TAP": "Tapresearch",
	"EMB": "Embrace Offers",
	"SWG": "Swagbucks",
	"PLT": "Playtestcloud",
	"CSH": "Cashwalk",
	"BZZ": "Buzzvil",
	"NND": "Nend",
	"MBU": "Mobusi",
	"MAV": "Mavio",
	"ORG": "Organic",
	"XPR": "Xpromo",
}

// opaqueTokens maps base64-obfuscated tracker tokens to network names.
// These come from attribution exports that carry the tracker slug encoded
// rather than the campaign code.
var opaqueTokens = map[string]string{
	"YXBwbG92aW5faW50":         "AppLovin",
	"YXBwbG92aW5fc2Rr":         "AppLovin",
	"dW5pdHlhZHNfaW50":         "Unity Ads",
	"dW5pdHlfc2Rr":             "Unity Ads",
	"aXJvbnNvdXJjZV9pbnQ=":     "ironSource",
	"aXJvbnNvdXJjZV9zZGs=":     "ironSource",
	"bWludGVncmFsX2ludA==":     "Mintegral",
	"bWludGVncmFsX3Nkaw==":     "Mintegral",
	"dnVuZ2xlX2ludA==":         "Vungle",
	"dnVuZ2xlX3Nkaw==":         "Vungle",
	"YWRjb2xvbnlfaW50":         "AdColony",
	"Y2hhcnRib29zdF9pbnQ=":     "Chartboost",
	"bW9sb2NvX2ludA==":         "Moloco",
	"bGlmdG9mZl9pbnQ=":         "Liftoff",
	"dGFwam95X2ludA==":         "Tapjoy",
	"dGFwam95X29mZmVyd2FsbA==": "Tapjoy",
	"ZnliZXJfaW50":             "Fyber",
	"ZnliZXJfb2ZmZXJ3YWxs":     "Fyber",
	"aW5tb2JpX2ludA==":         "InMobi",
	"cGFuZ2xlX2ludA==":         "Pangle",
	"dGlrdG9rX2ludA==":         "TikTok for Business",
	"c25hcGNoYXRfaW50":         "Snapchat",
	"c25hcF9hZHM=":             "Snapchat",
	"a3dhaV9pbnQ=":             "Kwai for Business",
	"a3dhaV9mb3JfYnVzaW5lc3M=": "Kwai for Business",
	"Ymlnb2Fkc19pbnQ=":         "Bigo Ads",
	"Ymlnb19hZHM=":             "Bigo Ads",
	"c21hZGV4X2ludA==":         "Smadex",
	"YWFya2lfaW50":             "Aarki",
	"cmVtZXJnZV9pbnQ=":         "Remerge",
	"YWRpa3RlZXZfaW50":         "Adikteev",
	"eW91YXBwaV9pbnQ=":         "YouAppi",
	"amFtcHBfaW50":             "Jampp",
	"Y2F0Ynl0ZV9pbnQ=":         "Catbyte",
	"bWlzdHBsYXlfaW50":         "Mistplay",
	"bWlzdHBsYXlfbG95YWx0eQ==": "Mistplay",
	"YWRqb2VfaW50":             "adjoe",
	"YWRqb2VfcGxheXRpbWU=":     "adjoe",
	"YXBwbGlrZV9pbnQ=":         "AppLike",
	"YXBwbGlrZV9nYW1lbGlrZQ==": "AppLike",
	"YWxtZWRpYV9pbnQ=":         "Almedia",
	"bG9vdGFibHlfaW50":         "Lootably",
	"c2FiaW9faW50":             "Sabio",
	"Z29vZ2xlX3VhYw==":         "Google Ads",
	"bWV0YV9hYWE=":             "Meta Ads",
	"cGV0YWxfYWRz":             "Petal Ads",
	"eGlhb21pX2dldGFwcHM=":     "Xiaomi GetApps",
	"b3Bwb19hZHM=":             "Oppo Ads",
	"dml2b19hZHM=":             "Vivo Ads",
	"aHVhd2VpX2Fkcw==":         "Huawei Ads",
}

// ptsdkTokens maps PTSDK-prefixed playtime tracker tokens. Nearly all of
// them belong to adjoe's Playtime SDK; the two AppLike entries predate the
// white-label split.
var ptsdkTokens = map[string]string{
	"PTSDK":            "adjoe",
	"PTSDK_AND":        "adjoe",
	"PTSDK_AND_1":      "adjoe",
	"PTSDK_AND_2":      "adjoe",
	"PTSDK_AND_3":      "adjoe",
	"PTSDK_IOS":        "adjoe",
	"PTSDK_IOS_1":      "adjoe",
	"PTSDK_OFFERWALL":  "adjoe",
	"PTSDK_PLAYTIME":   "adjoe",
	"PTSDK_PLAYTIME2":  "adjoe",
	"PTSDK_REWARD":     "adjoe",
	"PTSDK_REWARD_V2":  "adjoe",
	"PTSDK_LEGACY":     "AppLike",
	"PTSDK_GAMELIKE":   "AppLike",
	"PTSDK_CASHREWARD": "adjoe",
	"PTSDK_COINPLAY":   "adjoe",
}

// forcedPrefixes always win regardless of what follows the underscore.
// They cover agency-managed accounts whose suffixes are free-form.
var forcedPrefixes = map[string]string{
	"DGT": "Digital Turbine",
	"TTC": "TikTok for Business",
	"MSP": "Mistplay",
}

// numericNetwork owns essentially all numeric-looking identifiers in the
// dataset: Mintegral reports publisher slots as bare offer/placement IDs.
const numericNetwork = "Mintegral"
