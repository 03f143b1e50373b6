// Package catalog holds the static styling options a user can pick from.
// Every list is ordered and the first entry is the default selection.
package catalog

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// OptionDescriptor is one selectable choice within a category. Prompt is the
// fragment substituted into the generation instruction.
type OptionDescriptor struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

type AspectRatioOption struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Ratio float64 `json:"ratio"`
}

type SpecialRequestPreset struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

var maleSuits = []OptionDescriptor{
	{ID: "navy-tie", Label: "네이비 수트 / 타이", Prompt: "a navy blue two-button suit jacket, white shirt, and a classic navy blue tie"},
	{ID: "charcoal-tie", Label: "차콜 수트 / 타이", Prompt: "a charcoal grey two-button suit jacket, white shirt, and a dark grey tie"},
	{ID: "black-tie", Label: "블랙 수트 / 타이", Prompt: "a classic black two-button suit jacket, white shirt, and a simple black tie"},
	{ID: "navy-no-tie", Label: "네이비 수트 / 노타이", Prompt: "a navy blue two-button suit jacket and a crisp white shirt, top button open"},
}

var femaleSuits = []OptionDescriptor{
	{ID: "charcoal-jacket", Label: "차콜 자켓", Prompt: "a charcoal grey tailored jacket with a white crew-neck blouse"},
	{ID: "navy-jacket", Label: "네이비 자켓", Prompt: "a navy blue tailored jacket with a cream-colored round-neck blouse"},
	{ID: "black-jacket", Label: "블랙 자켓", Prompt: "a classic black tailored jacket with a simple white blouse"},
}

var backgrounds = []OptionDescriptor{
	{ID: "light-gray", Label: "라이트 그레이", Prompt: "a solid, professional light gray studio background"},
	{ID: "white", Label: "화이트", Prompt: "a clean, solid white studio background"},
	{ID: "light-blue", Label: "라이트 블루", Prompt: "a soft, solid light blue studio background"},
	{ID: "corp-blue", Label: "기업 블루", Prompt: "a professional, corporate blue studio background"},
	{ID: "dark-gray", Label: "다크 그레이", Prompt: "a professional, solid dark charcoal gray studio background"},
	{ID: "dark-navy", Label: "다크 네이비", Prompt: "a deep, solid dark navy blue studio background"},
}

var framings = []OptionDescriptor{
	{ID: "headshot", Label: "얼굴/어깨", Prompt: "Crop to a balanced head-and-shoulders portrait (upper chest and up)."},
	{ID: "waist-up", Label: "상반신", Prompt: "Frame the shot from the waist up."},
	{ID: "full-body", Label: "전신", Prompt: "Show the full body from head to toe. The suit should include matching trousers or a skirt."},
}

var angles = []OptionDescriptor{
	{ID: "original", Label: "원본 각도 유지", Prompt: "Maintain the original angle and pose of the person in the photo."},
	{ID: "frontal", Label: "정면", Prompt: "Adjust the angle so the photo appears as a typical business profile (frontal head-on view)."},
	{ID: "three-quarter", Label: "사선", Prompt: "Adjust the angle to a classic three-quarter view, with the shoulders slightly turned away from the camera."},
}

var expressions = []OptionDescriptor{
	{ID: "neutral", Label: "원본 표정 유지", Prompt: "Maintain the original facial expression."},
	{ID: "slight-smile", Label: "은은한 미소", Prompt: "Subtly and realistically adjust the facial expression to a gentle, slight, closed-mouth smile suitable for a professional headshot. Ensure the change is minimal, natural-looking, and fits the person's face."},
	{ID: "bright-smile", Label: "환한 미소", Prompt: "Subtly and realistically adjust the facial expression to a warm, genuine, open-mouth smile suitable for a professional headshot. Ensure the change is natural-looking, pleasant, and fits the person's face."},
	{ID: "confident", Label: "자신감 있는 표정", Prompt: `Subtly and realistically adjust the facial expression to convey confidence. This may include a very slight, closed-mouth smile, a hint of a "smize" (smiling with the eyes), and a generally assured look. The change must be minimal, natural, and professional.`},
}

var retouchings = []OptionDescriptor{
	{ID: "level-0", Label: "원본", Prompt: "Strictly preserve all facial features, bone structure, skin texture, and identity. Do not make any alterations to the face!!!!!!"},
	{ID: "level-1", Label: "최소", Prompt: "Apply only the most subtle and minimal professional retouching. Slightly even out skin tone. Do not alter facial features."},
	{ID: "level-2", Label: "기본", Prompt: "Apply standard professional headshot retouching. Even out skin tone, soften very minor blemishes, and slightly enhance lighting to look professional, but keep all facial features and structure identical."},
	{ID: "level-3", Label: "보정", Prompt: "In addition to standard retouching, make very subtle, natural-looking enhancements to facial symmetry and features to increase attractiveness slightly, while ensuring the person is still completely recognizable. The changes must be minimal."},
	{ID: "level-4", Label: "강함", Prompt: "Make subtle enhancements to facial features to create a slightly more idealized and charismatic version of the person, while maintaining their core identity and recognizability. The result should look like the person on their absolute best day, professionally photographed and retouched."},
}

var specialRequests = []SpecialRequestPreset{
	{ID: "keep-features", Label: "얼굴 특징 유지", Text: "Keep all distinctive facial features exactly as they are."},
	{ID: "tidy-hair", Label: "머리 단정하게 정리", Text: "Tidy up the hair so it looks neat and professional."},
	{ID: "remove-beard", Label: "수염 제거", Text: "Remove the beard and stubble cleanly."},
	{ID: "remove-reflection", Label: "안경 반사 제거", Text: "Remove any light reflection from the glasses."},
	{ID: "symmetry", Label: "얼굴 대칭 교정", Text: "Slightly correct facial symmetry in a natural way."},
	{ID: "whiten-teeth", Label: "치아 미백", Text: "Whiten the teeth naturally."},
}

var aspectRatios = []AspectRatioOption{
	{ID: "3:4", Label: "이력서(여권) (3:4)", Ratio: 3.0 / 4.0},
	{ID: "1:1", Label: "프로필 (1:1)", Ratio: 1.0},
	{ID: "4:5", Label: "SNS (4:5)", Ratio: 4.0 / 5.0},
}

// AttireFor returns the attire list for the given gender. Unknown genders
// fall back to the male list. Switching gender resets the selection to the
// first entry of the returned list.
func AttireFor(g Gender) []OptionDescriptor {
	if g == GenderFemale {
		return clone(femaleSuits)
	}
	return clone(maleSuits)
}

func Backgrounds() []OptionDescriptor { return clone(backgrounds) }
func Framings() []OptionDescriptor { return clone(framings) }
func Angles() []OptionDescriptor { return clone(angles) }
func Expressions() []OptionDescriptor { return clone(expressions) }
func Retouchings() []OptionDescriptor { return clone(retouchings) }

func SpecialRequests() []SpecialRequestPreset {
	out := make([]SpecialRequestPreset, len(specialRequests))
	copy(out, specialRequests)
	return out
}
func AspectRatios() []AspectRatioOption {
	out := make([]AspectRatioOption, len(aspectRatios))
	copy(out, aspectRatios)
	return out
}

// DefaultAttire returns the first attire entry for the gender.
func DefaultAttire(g Gender) OptionDescriptor {
	return AttireFor(g)[0]
}

// Find looks up an option by ID within a category list.
func Find(list []OptionDescriptor, id string) (OptionDescriptor, bool) {
	for _, o := range list {
		if o.ID == id {
			return o, true
		}
	}
	return OptionDescriptor{}, false
}

func clone(list []OptionDescriptor) []OptionDescriptor {
	out := make([]OptionDescriptor, len(list))
	copy(out, list)
	return out
}
