package domain

// DefaultService is the fallback key for unknown or missing service types.
const DefaultService = "포트폴리오"

var fallbackFonts = map[string]FontTriple{
	"포트폴리오": {
		Heading:   "Playfair Display",
		Body:      "Inter",
		Korean:    "Noto Serif KR",
		Reasoning: "포트폴리오에 최적화된 우아하고 전문적인 조합입니다. Playfair Display는 세련된 느낌을, Inter는 뛰어난 가독성을 제공합니다.",
	},
	"브랜드 홍보": {
		Heading:   "Montserrat",
		Body:      "Open Sans",
		Korean:    "Noto Sans KR",
		Reasoning: "브랜드 홍보에 적합한 현대적이고 깔끔한 조합입니다. Montserrat는 강한 인상을, Open Sans는 친근한 느낌을 전달합니다.",
	},
	"제품 판매": {
		Heading:   "Oswald",
		Body:      "Roboto",
		Korean:    "Black Han Sans",
		Reasoning: "제품 판매에 효과적인 강렬하고 주목도 높은 조합입니다. Oswald는 임팩트를, Roboto는 신뢰감을 제공합니다.",
	},
	"정보 전달": {
		Heading:   "Roboto Slab",
		Body:      "Noto Sans",
		Korean:    "Noto Sans KR",
		Reasoning: "정보 전달에 최적화된 읽기 쉽고 명확한 조합입니다. 두 폰트 모두 뛰어난 가독성으로 장시간 읽기에 적합합니다.",
	},
	"학습": {
		Heading:   "Bitter",
		Body:      "Lora",
		Korean:    "Nanum Myeongjo",
		Reasoning: "학습 콘텐츠에 적합한 편안하고 집중하기 좋은 조합입니다. 세리프 폰트들이 신뢰감과 전문성을 전달합니다.",
	},
	"엔터테인먼트": {
		Heading:   "Righteous",
		Body:      "Quicksand",
		Korean:    "Jua",
		Reasoning: "엔터테인먼트에 어울리는 재미있고 활기찬 조합입니다. 둥글고 친근한 형태가 즐거운 분위기를 조성합니다.",
	},
}

// FallbackFonts returns the fixed pairing for a service type,
// or the portfolio pairing when the service is not one of the known categories.
func FallbackFonts(service string) FontTriple {
	if f, ok := fallbackFonts[service]; ok {
		return f
	}
	return fallbackFonts[DefaultService]
}

