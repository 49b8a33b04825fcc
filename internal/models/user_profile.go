package models

const (
	DeliveryVaginal  = "vaginal"
	DeliveryCSection = "c-section"
)

const (
	LanguageEnglish = "en"
	LanguageHindi   = "hi"
	LanguageTamil   = "ta"
)

// UserProfile is the singleton record describing the recovering mother.
// PINHash holds a bcrypt hash; the raw PIN is never stored.
type UserProfile struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	DeliveryDate        string `json:"deliveryDate"`
	DeliveryType        string `json:"deliveryType"`
	Language            string `json:"language"`
	OnboardingCompleted bool   `json:"onboardingCompleted"`
	PINEnabled          bool   `json:"pinEnabled"`
	PINHash             string `json:"pinCode,omitempty"`
}

// UserProfilePatch carries a partial update; nil fields are left unchanged.
type UserProfilePatch struct {
	Name                *string `json:"name"`
	DeliveryDate        *string `json:"deliveryDate"`
	DeliveryType        *string `json:"deliveryType"`
	Language            *string `json:"language"`
	OnboardingCompleted *bool   `json:"onboardingCompleted"`
	PINEnabled          *bool   `json:"pinEnabled"`
	PINHash             *string `json:"pinCode"`
}

func (patch UserProfilePatch) ApplyTo(profile *UserProfile) {
	if patch.Name != nil {
		profile.Name = *patch.Name
	}
	if patch.DeliveryDate != nil {
		profile.DeliveryDate = *patch.DeliveryDate
	}
	if patch.DeliveryType != nil {
		profile.DeliveryType = *patch.DeliveryType
	}
	if patch.Language != nil {
		profile.Language = *patch.Language
	}
	if patch.OnboardingCompleted != nil {
		profile.OnboardingCompleted = *patch.OnboardingCompleted
	}
	if patch.PINEnabled != nil {
		profile.PINEnabled = *patch.PINEnabled
	}
	if patch.PINHash != nil {
		profile.PINHash = *patch.PINHash
	}
}

func (profile UserProfile) Validate() error {
	if profile.Name == "" {
		return requiredFieldError("name")
	}
	if profile.DeliveryDate == "" {
		return requiredFieldError("deliveryDate")
	}
	if !isValidDateString(profile.DeliveryDate) {
		return invalidFieldError("deliveryDate", profile.DeliveryDate)
	}
	if !oneOf(profile.DeliveryType, DeliveryVaginal, DeliveryCSection) {
		return invalidFieldError("deliveryType", profile.DeliveryType)
	}
	if !oneOf(profile.Language, LanguageEnglish, LanguageHindi, LanguageTamil) {
		return invalidFieldError("language", profile.Language)
	}
	return nil
}
