package forms

import "fmt"

// Lang selects the localized validation copy.
type Lang string

const (
	LangEN Lang = "en"
	LangTH Lang = "th"
)

func ParseLang(s string) Lang {
	if Lang(s) == LangTH {
		return LangTH
	}
	return LangEN
}

type messageSet struct {
	required              string
	invalidEmail          string
	formatRequired        string
	invalidDuration       string
	allAgreementsRequired string
	signInBeforeDraft     string
	signInBeforeSubmit    string
	genericSubmitError    string
}

var messages = map[Lang]messageSet{
	LangEN: {
		required:              "This field is required",
		invalidEmail:          "Please enter a valid email address",
		formatRequired:        "Please select a film format",
		invalidDuration:       "Please enter a valid duration",
		allAgreementsRequired: "You must accept all agreements before submitting",
		signInBeforeDraft:     "Please sign in before saving draft",
		signInBeforeSubmit:    "Please sign in before submitting your work",
		genericSubmitError:    "An error occurred while submitting. Please try again.",
	},
	LangTH: {
		required:              "กรุณากรอกข้อมูลนี้",
		invalidEmail:          "กรุณากรอกอีเมลที่ถูกต้อง",
		formatRequired:        "กรุณาเลือกรูปแบบภาพยนตร์",
		invalidDuration:       "กรุณากรอกความยาวที่ถูกต้อง",
		allAgreementsRequired: "กรุณายอมรับข้อตกลงทั้งหมดก่อนส่งผลงาน",
		signInBeforeDraft:     "กรุณาเข้าสู่ระบบก่อนบันทึกร่าง",
		signInBeforeSubmit:    "กรุณาเข้าสู่ระบบก่อนส่งผลงาน",
		genericSubmitError:    "เกิดข้อผิดพลาดในการส่งผลงาน กรุณาลองใหม่อีกครั้ง",
	},
}

func msg(lang Lang) messageSet {
	if m, ok := messages[lang]; ok {
		return m
	}
	return messages[LangEN]
}

// GenericSubmitError is shown when submission fails for an unexpected reason.
func GenericSubmitError(lang Lang) string {
	return msg(lang).genericSubmitError
}

func invalidAgeMessage(lang Lang, cfg CategoryConfig) string {
	if cfg.Unbounded {
		if lang == LangTH {
			return fmt.Sprintf("อายุต้องไม่ต่ำกว่า %d ปี", cfg.AgeMin)
		}
		return fmt.Sprintf("Age must be at least %d years old", cfg.AgeMin)
	}
	if lang == LangTH {
		return fmt.Sprintf("อายุต้องอยู่ระหว่าง %d-%d ปี", cfg.AgeMin, cfg.AgeMax)
	}
	return fmt.Sprintf("Age must be between %d-%d years old", cfg.AgeMin, cfg.AgeMax)
}

func ageOverLimitMessage(lang Lang, age int, cfg CategoryConfig) string {
	if lang == LangTH {
		return fmt.Sprintf("อายุของคุณเกินกำหนด (%d ปี) การประกวดนี้เปิดรับเฉพาะผู้ที่มีอายุ %d-%d ปี เท่านั้น",
			age, cfg.AgeMin, cfg.AgeMax)
	}
	return fmt.Sprintf("Your age (%d years) exceeds the limit. This competition is only open to participants aged %d-%d years old.",
		age, cfg.AgeMin, cfg.AgeMax)
}
