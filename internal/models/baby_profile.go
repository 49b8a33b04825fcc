package models

const (
	FeedingBreast = "breast"
	FeedingBottle = "bottle"
	FeedingSolid  = "solid"
)

const (
	DiaperWet   = "wet"
	DiaperDirty = "dirty"
	DiaperBoth  = "both"
)

type FeedingLog struct {
	ID       string  `json:"id"`
	Time     string  `json:"time"`
	Type     string  `json:"type"`
	Duration float64 `json:"duration,omitempty"`
	Amount   string  `json:"amount,omitempty"`
}

type DiaperLog struct {
	ID   string `json:"id"`
	Time string `json:"time"`
	Type string `json:"type"`
}

type TemperatureLog struct {
	ID          string  `json:"id"`
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature"`
}

// BabyProfile is the singleton record for the baby; sub-logs carry
// their own ids and timestamps and are appended, never rewritten.
type BabyProfile struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	BirthDate       string           `json:"birthDate"`
	BirthWeight     float64          `json:"birthWeight,omitempty"`
	CurrentWeight   float64          `json:"currentWeight,omitempty"`
	FeedingLogs     []FeedingLog     `json:"feedingLogs"`
	DiaperLogs      []DiaperLog      `json:"diaperLogs"`
	TemperatureLogs []TemperatureLog `json:"temperatureLogs"`
}

type BabyProfilePatch struct {
	Name          *string  `json:"name"`
	BirthDate     *string  `json:"birthDate"`
	BirthWeight   *float64 `json:"birthWeight"`
	CurrentWeight *float64 `json:"currentWeight"`
}

func (patch BabyProfilePatch) ApplyTo(profile *BabyProfile) {
	if patch.Name != nil {
		profile.Name = *patch.Name
	}
	if patch.BirthDate != nil {
		profile.BirthDate = *patch.BirthDate
	}
	if patch.BirthWeight != nil {
		profile.BirthWeight = *patch.BirthWeight
	}
	if patch.CurrentWeight != nil {
		profile.CurrentWeight = *patch.CurrentWeight
	}
}

func (profile BabyProfile) Validate() error {
	if profile.Name == "" {
		return requiredFieldError("name")
	}
	if profile.BirthDate == "" {
		return requiredFieldError("birthDate")
	}
	if !isValidDateString(profile.BirthDate) {
		return invalidFieldError("birthDate", profile.BirthDate)
	}
	return nil
}

func (log FeedingLog) Validate() error {
	if log.Time == "" {
		return requiredFieldError("time")
	}
	if !oneOf(log.Type, FeedingBreast, FeedingBottle, FeedingSolid) {
		return invalidFieldError("type", log.Type)
	}
	return nil
}

func (log DiaperLog) Validate() error {
	if log.Time == "" {
		return requiredFieldError("time")
	}
	if !oneOf(log.Type, DiaperWet, DiaperDirty, DiaperBoth) {
		return invalidFieldError("type", log.Type)
	}
	return nil
}

func (log TemperatureLog) Validate() error {
	if log.Time == "" {
		return requiredFieldError("time")
	}
	if log.Temperature <= 0 {
		return invalidFieldError("temperature", log.Temperature)
	}
	return nil
}
