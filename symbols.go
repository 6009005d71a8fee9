package lipi

// UnitKind tags an output unit produced by the scanner.
type UnitKind uint8

const (
	Verbatim    UnitKind = iota // input passed through unchanged
	Digit                       // Devanagari digit
	Consonant                   // single consonant letter
	Cluster                     // multi-letter consonant cluster or conjunct
	VowelLetter                 // independent vowel letter
	VowelSign                   // combining vowel sign (matra)
	Joiner                      // virama between two bare consonants
	Exception                   // literal rendering from the word-exception table
)

func (k UnitKind) String() string {
	switch k {
	case Verbatim:
		return "verbatim"
	case Digit:
		return "digit"
	case Consonant:
		return "consonant"
	case Cluster:
		return "cluster"
	case VowelLetter:
		return "vowel-letter"
	case VowelSign:
		return "vowel-sign"
	case Joiner:
		return "joiner"
	case Exception:
		return "exception"
	}
	return "unknown"
}

// Unit is one output unit of a scan. Roman is the input the unit was
// produced from, Text its Devanagari rendering.
type Unit struct {
	Kind  UnitKind
	Roman string
	Text  string
}

const (
	virama    = "्" // consonant joiner
	digitZero = '०'
)

const (
	minSequenceLen = 2
	maxSequenceLen = 5
)

// --- Built-in tables -------------------------------------------------------

// Standalone vowels and the matras used after a pending consonant.
// 'a' after a consonant is the inherent vowel and has an empty matra.
var defaultVowels = []struct {
	roman  rune
	letter string
	sign   string
}{
	{'a', "अ", ""},
	{'i', "इ", "ि"},
	{'u', "उ", "ु"},
	{'e', "ए", "े"},
	{'o', "ओ", "ो"},
}

// Independent counterparts of multi-letter vowel signs.
var defaultIndependent = map[string]string{
	"ा": "आ",
	"ी": "ई",
	"ू": "ऊ",
	"ै": "ऐ",
	"ौ": "औ",
	"ृ": "ऋ",
}

var defaultSequences = []struct {
	roman string
	kind  UnitKind
	text  string
}{
	{"aa", VowelSign, "ा"},
	{"ii", VowelSign, "ी"},
	{"ee", VowelSign, "ी"},
	{"uu", VowelSign, "ू"},
	{"oo", VowelSign, "ू"},
	{"ai", VowelSign, "ै"},
	{"au", VowelSign, "ौ"},
	{"kh", Cluster, "ख"},
	{"gh", Cluster, "घ"},
	{"ch", Cluster, "च"},
	{"chh", Cluster, "छ"},
	{"jh", Cluster, "झ"},
	{"th", Cluster, "थ"},
	{"dh", Cluster, "ध"},
	{"ph", Cluster, "फ"},
	{"bh", Cluster, "भ"},
	{"sh", Cluster, "श"},
	{"shh", Cluster, "ष"},
	{"ng", Cluster, "ङ"},
	{"ny", Cluster, "ञ"},
	{"tt", Cluster, "ट"},
	{"tth", Cluster, "ठ"},
	{"dd", Cluster, "ड"},
	{"ddh", Cluster, "ढ"},
	{"gy", Cluster, "ज्ञ"},
	{"ksh", Cluster, "क्ष"},
	{"tr", Cluster, "त्र"},
	{"shr", Cluster, "श्र"},
	{"shri", Cluster, "श्री"},
	{"shree", Cluster, "श्री"},
}

var defaultConsonants = map[rune]string{
	'b': "ब", 'c': "क", 'd': "द", 'f': "फ", 'g': "ग",
	'h': "ह", 'j': "ज", 'k': "क", 'l': "ल", 'm': "म",
	'n': "न", 'p': "प", 'q': "क", 'r': "र", 's': "स",
	't': "त", 'v': "व", 'w': "व", 'x': "क्स", 'y': "य",
	'z': "ज",
}

// Proper nouns and form vocabulary whose phonetic rendering would be wrong.
var defaultExceptions = map[string]string{
	"nepal":       "नेपाल",
	"kathmandu":   "काठमाडौं",
	"pokhara":     "पोखरा",
	"lalitpur":    "ललितपुर",
	"bhaktapur":   "भक्तपुर",
	"nagarikta":   "नागरिकता",
	"janma":       "जन्म",
	"mrityu":      "मृत्यु",
	"bibaha":      "विवाह",
	"darta":       "दर्ता",
	"pradesh":     "प्रदेश",
	"wada":        "वडा",
	"jilla":       "जिल्ला",
	"nagarpalika": "नगरपालिका",
	"gaunpalika":  "गाउँपालिका",
	"sarkar":      "सरकार",
	"nibedan":     "निवेदन",
}

// endsInVowel reports whether a Roman key resolves its own trailing vowel.
func endsInVowel(roman string) bool {
	if roman == "" {
		return false
	}
	switch roman[len(roman)-1] {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
