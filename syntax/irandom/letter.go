package irandom

type Letter string

const (
	LetterAbc            = Letter("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	LetterAbcLower       = Letter("abcdefghijklmnopqrstuvwxyz")
	LetterAbcUpper       = Letter("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	LetterNum            = Letter("0123456789")
	LetterNumAndLowAbc   = Letter("abcdefghijklmnopqrstuvwxyz0123456789")
	LetterNumAndUpperAbc = Letter("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	LetterAll            = Letter("abcdefghijklmnopqrstuvwxyz0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	LetterHex            = Letter("0123456789abcdef")
	LetterSymbol         = Letter("!#$%&()*+,-./:;<=>?@[]^_{|}~")

	// 去掉 0 O 1 l I 等易混淆字符
	LetterHumanReadable = Letter("abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789")
)

var letters = map[string]Letter{
	"abc":       LetterAbc,
	"abc_lower": LetterAbcLower,
	"abc_upper": LetterAbcUpper,
	"num":       LetterNum,
	"num_lower": LetterNumAndLowAbc,
	"num_upper": LetterNumAndUpperAbc,
	"all":       LetterAll,
	"hex":       LetterHex,
	"symbol":    LetterSymbol,
	"human":     LetterHumanReadable,
}

// Letters 按名称返回内置字母表的副本
func Letters() map[string]Letter {
	out := make(map[string]Letter, len(letters))
	for k, v := range letters {
		out[k] = v
	}
	return out
}

// LookupLetter 名称存在时返回内置字母表，否则把 name 本身当作字母表
func LookupLetter(name string) string {
	if l, ok := letters[name]; ok {
		return string(l)
	}
	return name
}

func (l Letter) String() string { return string(l) }
