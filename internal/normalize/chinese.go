package normalize

import (
	"lexipipe/internal/detect"
	"lexipipe/internal/token"
)

// ConversionTable looks up a character-to-character script conversion. It
// is an opaque capability: a miss means "leave the character alone".
type ConversionTable interface {
	Convert(r rune) (rune, bool)
}

// simplifiedVariants maps common traditional Han characters (and a few
// z-variants) to their simplified forms. A full conversion table is an
// external concern; this built-in covers the high-frequency characters.
var simplifiedVariants = map[rune]rune{
	'嚴': '严', '國': '国', '學': '学', '體': '体', '書': '书', '長': '长',
	'門': '门', '風': '风', '飛': '飞', '馬': '马', '鳥': '鸟', '魚': '鱼',
	'龍': '龙', '雲': '云', '電': '电', '車': '车', '貝': '贝', '見': '见',
	'語': '语', '說': '说', '讀': '读', '寫': '写', '聽': '听', '話': '话',
	'時': '时', '間': '间', '問': '问', '開': '开', '關': '关', '東': '东',
	'華': '华', '漢': '汉', '幾': '几', '機': '机', '計': '计', '設': '设',
	'經': '经', '結': '结', '給': '给', '統': '统', '絲': '丝', '紅': '红',
	'愛': '爱', '樂': '乐', '藥': '药', '醫': '医', '辦': '办', '幫': '帮',
	'歲': '岁', '萬': '万', '億': '亿', '價': '价', '條': '条', '買': '买',
	'賣': '卖', '錢': '钱', '銀': '银', '鐵': '铁', '錯': '错', '鍵': '键',
	'點': '点', '黨': '党', '顯': '显', '頭': '头', '頁': '页', '題': '题',
	'廣': '广', '廠': '厂', '產': '产', '傳': '传', '優': '优', '會': '会',
	'來': '来', '個': '个', '們': '们', '從': '从', '眾': '众', '這': '这',
	'還': '还', '進': '进', '運': '运', '過': '过', '達': '达', '遠': '远',
	'對': '对', '導': '导', '將': '将', '專': '专', '區': '区', '醜': '丑',
	'為': '为', '無': '无', '與': '与', '舊': '旧', '節': '节', '號': '号',
	'處': '处', '蟲': '虫', '裝': '装', '裡': '里', '務': '务',
	'動': '动', '勞': '劳', '勢': '势', '發': '发', '變': '变', '讓': '让',
}

type builtinConversionTable struct{}

func (builtinConversionTable) Convert(r rune) (rune, bool) {
	s, ok := simplifiedVariants[r]
	return s, ok
}

// ChineseNormalizer converts traditional Han characters to simplified
// forms so both spellings index to one term. It applies to Han runs whose
// language is Mandarin or unknown, leaving Japanese kanji untouched.
type ChineseNormalizer struct {
	table ConversionTable
}

// NewChineseNormalizer wraps a conversion table; nil selects the built-in
// one.
func NewChineseNormalizer(table ConversionTable) *ChineseNormalizer {
	if table == nil {
		table = builtinConversionTable{}
	}
	return &ChineseNormalizer{table: table}
}

// Family implements Normalizer.
func (*ChineseNormalizer) Family() string { return "chinese" }

// Priority implements Normalizer.
func (*ChineseNormalizer) Priority() int { return PriorityChinese }

// ShouldNormalize implements Normalizer.
func (n *ChineseNormalizer) ShouldNormalize(t token.Token) bool {
	if !t.IsWord() || t.Script != detect.ScriptCJ {
		return false
	}
	return t.Language == detect.LanguageOther || t.Language == detect.Mandarin
}

// Normalize implements Normalizer.
func (n *ChineseNormalizer) Normalize(t token.Token, opts Options) []token.Token {
	return []token.Token{rewriteLemma(t, opts, func(r rune) string {
		if s, ok := n.table.Convert(r); ok {
			return string(s)
		}
		return string(r)
	})}
}
