package model

// ReasonEntry is one row of the absence reason reference table.
// Group 0 is reserved for "No Reason"; groups 1-4 are the coarse classes the
// predictor form asks for.
type ReasonEntry struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Group       int    `json:"group"`
}

// Option is a value/label pair rendered as a select option.
type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Index equals ID; ReasonByID depends on it.
var reasons = [...]ReasonEntry{
	{ID: 0, Description: "No Reason", Group: 0},
	{ID: 1, Description: "Infectious and parasitic diseases", Group: 1},
	{ID: 2, Description: "Neoplasms", Group: 1},
	{ID: 3, Description: "Diseases of the blood", Group: 1},
	{ID: 4, Description: "Endocrine diseases", Group: 1},
	{ID: 5, Description: "Mental and behavioral disorders", Group: 1},
	{ID: 6, Description: "Diseases of the nervous system", Group: 1},
	{ID: 7, Description: "Diseases of the eye", Group: 1},
	{ID: 8, Description: "Diseases of the ear", Group: 1},
	{ID: 9, Description: "Diseases of the circulatory system", Group: 1},
	{ID: 10, Description: "Diseases of the respiratory system", Group: 1},
	{ID: 11, Description: "Diseases of the digestive system", Group: 1},
	{ID: 12, Description: "Diseases of the skin", Group: 1},
	{ID: 13, Description: "Musculoskeletal diseases", Group: 1},
	{ID: 14, Description: "Genitourinary diseases", Group: 1},
	{ID: 15, Description: "Pregnancy, childbirth", Group: 2},
	{ID: 16, Description: "Perinatal conditions", Group: 2},
	{ID: 17, Description: "Congenital malformations", Group: 2},
	{ID: 18, Description: "Abnormal clinical/lab findings", Group: 3},
	{ID: 19, Description: "Injury, poisoning", Group: 3},
	{ID: 20, Description: "External causes of morbidity", Group: 3},
	{ID: 21, Description: "Contact with health services", Group: 3},
	{ID: 22, Description: "Medical consultation", Group: 4},
	{ID: 23, Description: "Dental consultation", Group: 4},
	{ID: 24, Description: "Physiotherapy", Group: 4},
	{ID: 25, Description: "Unjustified absence", Group: 4},
	{ID: 26, Description: "Justified absence", Group: 4},
	{ID: 27, Description: "Duty leave", Group: 4},
	{ID: 28, Description: "Blood donation", Group: 4},
}

var reasonGroups = [...]Option{
	{Value: 1, Label: "Illness (Group 1)"},
	{Value: 2, Label: "Pregnancy or Childbirth (Group 2)"},
	{Value: 3, Label: "Injury or Poisoning (Group 3)"},
	{Value: 4, Label: "Medical Appointment / Other (Group 4)"},
}

var educationLevels = [...]Option{
	{Value: 1, Label: "High School (ID 1)"},
	{Value: 2, Label: "University (ID 2)"},
	{Value: 3, Label: "Graduate (ID 3)"},
	{Value: 4, Label: "Master/Doctorate (ID 4)"},
}

// Reasons returns the reference table in display order. The slice is a copy.
func Reasons() []ReasonEntry {
	out := make([]ReasonEntry, len(reasons))
	copy(out, reasons[:])
	return out
}

// ReasonByID looks up a reason for display. It is a lookup aid only: nothing
// rejects a reason id because it is missing from the table.
func ReasonByID(id int) (ReasonEntry, bool) {
	if id < 0 || id >= len(reasons) {
		return ReasonEntry{}, false
	}
	return reasons[id], true
}

func ReasonGroups() []Option {
	out := make([]Option, len(reasonGroups))
	copy(out, reasonGroups[:])
	return out
}

func EducationLevels() []Option {
	out := make([]Option, len(educationLevels))
	copy(out, educationLevels[:])
	return out
}
