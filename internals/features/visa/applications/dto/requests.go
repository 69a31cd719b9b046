package dto

import (
	"strings"
	"time"

	"evisa_backend/internals/features/visa/applications/model"
)

/* =========================================================
   Step requests

   JSON and multipart share the same structs; dates travel
   as "2006-01-02" strings and are parsed during
   validation. Optional fields stay out of the patch map
   when blank, so a partial resubmission can never erase a
   previously saved value.
   ========================================================= */

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	return t, err == nil
}

func trim(s string) string { return strings.TrimSpace(s) }

func strPtr(s string) *string { v := s; return &v }

// ---------------------------------------------------------
// Step 1 — group A
// ---------------------------------------------------------

type StepOneRequest struct {
	ApplicationType     string `json:"application_type" form:"application_type"`
	PassportType        string `json:"passport_type" form:"passport_type"`
	FirstName           string `json:"first_name" form:"first_name"`
	LastName            string `json:"last_name" form:"last_name"`
	PassportNumber      string `json:"passport_number" form:"passport_number"`
	VisaType            string `json:"visa_type" form:"visa_type"`
	Nationality         string `json:"nationality" form:"nationality"`
	PortOfArrival       string `json:"port_of_arrival" form:"port_of_arrival"`
	DateOfBirth         string `json:"date_of_birth" form:"date_of_birth"`
	Email               string `json:"email" form:"email"`
	ExpectedArrivalDate string `json:"expected_arrival_date" form:"expected_arrival_date"`
	PhoneNumber         string `json:"phone_number" form:"phone_number"`
	// required only for eTOURIST VISA
	TimeZone string `json:"time_zone" form:"time_zone"`
}

func (r *StepOneRequest) Normalize() {
	r.ApplicationType = trim(r.ApplicationType)
	r.PassportType = trim(r.PassportType)
	r.FirstName = trim(r.FirstName)
	r.LastName = trim(r.LastName)
	r.PassportNumber = strings.ToUpper(trim(r.PassportNumber))
	r.VisaType = trim(r.VisaType)
	r.Nationality = trim(r.Nationality)
	r.PortOfArrival = trim(r.PortOfArrival)
	r.DateOfBirth = trim(r.DateOfBirth)
	r.Email = trim(r.Email)
	r.ExpectedArrivalDate = trim(r.ExpectedArrivalDate)
	r.PhoneNumber = trim(r.PhoneNumber)
	r.TimeZone = trim(r.TimeZone)
}

// ToModel builds the new record. Only call after validation passed: date
// fields are assumed parseable here.
func (r StepOneRequest) ToModel() model.VisaApplicationModel {
	dob, _ := parseDate(r.DateOfBirth)
	arrival, _ := parseDate(r.ExpectedArrivalDate)
	now := time.Now()

	m := model.VisaApplicationModel{
		VisaApplicationApplicationType:     r.ApplicationType,
		VisaApplicationPassportType:        r.PassportType,
		VisaApplicationFirstName:           r.FirstName,
		VisaApplicationLastName:            r.LastName,
		VisaApplicationPassportNumber:      r.PassportNumber,
		VisaApplicationVisaType:            r.VisaType,
		VisaApplicationNationality:         r.Nationality,
		VisaApplicationPortOfArrival:       r.PortOfArrival,
		VisaApplicationDateOfBirth:         dob,
		VisaApplicationEmail:               r.Email,
		VisaApplicationExpectedArrivalDate: arrival,
		VisaApplicationPhoneNumber:         r.PhoneNumber,
		VisaApplicationStatus:              model.StatusInProgress,
		VisaApplicationProgress:            model.ProgressStep1Done,
		VisaApplicationCreatedAt:           now,
		VisaApplicationUpdatedAt:           now,
	}
	if r.TimeZone != "" {
		m.VisaApplicationTimeZone = strPtr(r.TimeZone)
	}
	return m
}

// ---------------------------------------------------------
// Step 2 — group B
// ---------------------------------------------------------

type StepTwoRequest struct {
	Surname                    string `json:"surname" form:"surname"`
	GivenName                  string `json:"given_name" form:"given_name"`
	NameChange                 bool   `json:"name_change" form:"name_change"`
	Sex                        string `json:"sex" form:"sex"`
	DateOfBirth                string `json:"date_of_birth" form:"date_of_birth"`
	TownCityOfBirth            string `json:"town_city_of_birth" form:"town_city_of_birth"`
	CountryOfBirth             string `json:"country_of_birth" form:"country_of_birth"`
	CitizenshipNationalIDNo    string `json:"citizenship_national_id_no" form:"citizenship_national_id_no"`
	Religion                   string `json:"religion" form:"religion"`
	VisibleIdentificationMarks string `json:"visible_identification_marks" form:"visible_identification_marks"`
	Nationality                string `json:"nationality" form:"nationality"`
	EduQualification           string `json:"edu_qualification" form:"edu_qualification"`
	LivedTwoYears              string `json:"lived_two_years" form:"lived_two_years"`
	PassportNumber             string `json:"passport_number" form:"passport_number"`
	PlaceOfIssue               string `json:"place_of_issue" form:"place_of_issue"`
	DateOfIssue                string `json:"date_of_issue" form:"date_of_issue"`
	DateOfExpiry               string `json:"date_of_expiry" form:"date_of_expiry"`
}

func (r *StepTwoRequest) Normalize() {
	r.Surname = trim(r.Surname)
	r.GivenName = trim(r.GivenName)
	r.Sex = trim(r.Sex)
	r.DateOfBirth = trim(r.DateOfBirth)
	r.TownCityOfBirth = trim(r.TownCityOfBirth)
	r.CountryOfBirth = trim(r.CountryOfBirth)
	r.CitizenshipNationalIDNo = trim(r.CitizenshipNationalIDNo)
	r.Religion = trim(r.Religion)
	r.VisibleIdentificationMarks = trim(r.VisibleIdentificationMarks)
	r.Nationality = trim(r.Nationality)
	r.EduQualification = trim(r.EduQualification)
	r.LivedTwoYears = trim(r.LivedTwoYears)
	r.PassportNumber = strings.ToUpper(trim(r.PassportNumber))
	r.PlaceOfIssue = trim(r.PlaceOfIssue)
	r.DateOfIssue = trim(r.DateOfIssue)
	r.DateOfExpiry = trim(r.DateOfExpiry)
}

// ToPatch lists only group-B columns (plus the two group-A fields this step
// is allowed to correct). Optional fields are dropped when blank.
func (r StepTwoRequest) ToPatch() map[string]interface{} {
	dob, _ := parseDate(r.DateOfBirth)
	issued, _ := parseDate(r.DateOfIssue)
	expires, _ := parseDate(r.DateOfExpiry)

	patch := map[string]interface{}{
		"visa_application_surname":            r.Surname,
		"visa_application_given_name":         r.GivenName,
		"visa_application_name_change":        r.NameChange,
		"visa_application_sex":                r.Sex,
		"visa_application_date_of_birth":      dob,
		"visa_application_town_city_of_birth": r.TownCityOfBirth,
		"visa_application_country_of_birth":   r.CountryOfBirth,
		"visa_application_religion":           r.Religion,
		"visa_application_nationality":        r.Nationality,
		"visa_application_edu_qualification":  r.EduQualification,
		"visa_application_lived_two_years":    r.LivedTwoYears,
		"visa_application_passport_number":    r.PassportNumber,
		"visa_application_place_of_issue":     r.PlaceOfIssue,
		"visa_application_date_of_issue":      issued,
		"visa_application_date_of_expiry":     expires,
		"visa_application_progress":           model.ProgressStep2Done,
	}
	if r.CitizenshipNationalIDNo != "" {
		patch["visa_application_citizenship_national_id_no"] = r.CitizenshipNationalIDNo
	}
	if r.VisibleIdentificationMarks != "" {
		patch["visa_application_visible_identification_marks"] = r.VisibleIdentificationMarks
	}
	return patch
}

// ---------------------------------------------------------
// Step 3 — group C
// ---------------------------------------------------------

type StepThreeRequest struct {
	HouseStreet   string `json:"house_street" form:"house_street"`
	VillageCity   string `json:"village_city" form:"village_city"`
	Country       string `json:"country" form:"country"`
	StateProvince string `json:"state_province" form:"state_province"`
	PostalCode    string `json:"postal_code" form:"postal_code"`
	MobileNumber  string `json:"mobile_number" form:"mobile_number"`

	PermanentHouseStreet   string `json:"permanent_house_street" form:"permanent_house_street"`
	PermanentVillageCity   string `json:"permanent_village_city" form:"permanent_village_city"`
	PermanentStateProvince string `json:"permanent_state_province" form:"permanent_state_province"`

	FatherFullName            string `json:"father_full_name" form:"father_full_name"`
	FatherNationality         string `json:"father_nationality" form:"father_nationality"`
	FatherPreviousNationality string `json:"father_previous_nationality" form:"father_previous_nationality"`
	FatherPlaceOfBirth        string `json:"father_place_of_birth" form:"father_place_of_birth"`
	FatherCountryOfBirth      string `json:"father_country_of_birth" form:"father_country_of_birth"`

	MotherFullName            string `json:"mother_full_name" form:"mother_full_name"`
	MotherNationality         string `json:"mother_nationality" form:"mother_nationality"`
	MotherPreviousNationality string `json:"mother_previous_nationality" form:"mother_previous_nationality"`
	MotherPlaceOfBirth        string `json:"mother_place_of_birth" form:"mother_place_of_birth"`
	MotherCountryOfBirth      string `json:"mother_country_of_birth" form:"mother_country_of_birth"`

	MaritalStatus             string `json:"marital_status" form:"marital_status"`
	SpouseName                string `json:"spouse_name" form:"spouse_name"`
	SpouseNationality         string `json:"spouse_nationality" form:"spouse_nationality"`
	SpousePreviousNationality string `json:"spouse_previous_nationality" form:"spouse_previous_nationality"`
	SpousePlaceOfBirth        string `json:"spouse_place_of_birth" form:"spouse_place_of_birth"`
	SpouseCountryOfBirth      string `json:"spouse_country_of_birth" form:"spouse_country_of_birth"`

	PresentOccupation string `json:"present_occupation" form:"present_occupation"`
	EmployerName      string `json:"employer_name" form:"employer_name"`
	Designation       string `json:"designation" form:"designation"`
	EmployerAddress   string `json:"employer_address" form:"employer_address"`
	EmployerPhone     string `json:"employer_phone" form:"employer_phone"`
	PastOccupation    string `json:"past_occupation" form:"past_occupation"`
}

func (r *StepThreeRequest) Normalize() {
	r.HouseStreet = trim(r.HouseStreet)
	r.VillageCity = trim(r.VillageCity)
	r.Country = trim(r.Country)
	r.StateProvince = trim(r.StateProvince)
	r.PostalCode = trim(r.PostalCode)
	r.MobileNumber = trim(r.MobileNumber)
	r.PermanentHouseStreet = trim(r.PermanentHouseStreet)
	r.PermanentVillageCity = trim(r.PermanentVillageCity)
	r.PermanentStateProvince = trim(r.PermanentStateProvince)
	r.FatherFullName = trim(r.FatherFullName)
	r.FatherNationality = trim(r.FatherNationality)
	r.FatherPreviousNationality = trim(r.FatherPreviousNationality)
	r.FatherPlaceOfBirth = trim(r.FatherPlaceOfBirth)
	r.FatherCountryOfBirth = trim(r.FatherCountryOfBirth)
	r.MotherFullName = trim(r.MotherFullName)
	r.MotherNationality = trim(r.MotherNationality)
	r.MotherPreviousNationality = trim(r.MotherPreviousNationality)
	r.MotherPlaceOfBirth = trim(r.MotherPlaceOfBirth)
	r.MotherCountryOfBirth = trim(r.MotherCountryOfBirth)
	r.MaritalStatus = strings.ToLower(trim(r.MaritalStatus))
	r.SpouseName = trim(r.SpouseName)
	r.SpouseNationality = trim(r.SpouseNationality)
	r.SpousePreviousNationality = trim(r.SpousePreviousNationality)
	r.SpousePlaceOfBirth = trim(r.SpousePlaceOfBirth)
	r.SpouseCountryOfBirth = trim(r.SpouseCountryOfBirth)
	r.PresentOccupation = trim(r.PresentOccupation)
	r.EmployerName = trim(r.EmployerName)
	r.Designation = trim(r.Designation)
	r.EmployerAddress = trim(r.EmployerAddress)
	r.EmployerPhone = trim(r.EmployerPhone)
	r.PastOccupation = trim(r.PastOccupation)
}

func (r StepThreeRequest) ToPatch() map[string]interface{} {
	patch := map[string]interface{}{
		"visa_application_house_street":             r.HouseStreet,
		"visa_application_village_city":             r.VillageCity,
		"visa_application_country":                  r.Country,
		"visa_application_state_province":           r.StateProvince,
		"visa_application_postal_code":              r.PostalCode,
		"visa_application_mobile_number":            r.MobileNumber,
		"visa_application_permanent_house_street":   r.PermanentHouseStreet,
		"visa_application_permanent_village_city":   r.PermanentVillageCity,
		"visa_application_permanent_state_province": r.PermanentStateProvince,
		"visa_application_father_full_name":         r.FatherFullName,
		"visa_application_father_nationality":       r.FatherNationality,
		"visa_application_father_place_of_birth":    r.FatherPlaceOfBirth,
		"visa_application_father_country_of_birth":  r.FatherCountryOfBirth,
		"visa_application_mother_full_name":         r.MotherFullName,
		"visa_application_mother_nationality":       r.MotherNationality,
		"visa_application_mother_place_of_birth":    r.MotherPlaceOfBirth,
		"visa_application_mother_country_of_birth":  r.MotherCountryOfBirth,
		"visa_application_marital_status":           r.MaritalStatus,
		"visa_application_present_occupation":       r.PresentOccupation,
		"visa_application_employer_name":            r.EmployerName,
		"visa_application_designation":              r.Designation,
		"visa_application_employer_address":         r.EmployerAddress,
		"visa_application_employer_phone":           r.EmployerPhone,
		"visa_application_progress":                 model.ProgressStep3Done,
	}
	if r.FatherPreviousNationality != "" {
		patch["visa_application_father_previous_nationality"] = r.FatherPreviousNationality
	}
	if r.MotherPreviousNationality != "" {
		patch["visa_application_mother_previous_nationality"] = r.MotherPreviousNationality
	}
	if r.PastOccupation != "" {
		patch["visa_application_past_occupation"] = r.PastOccupation
	}
	if r.SpouseName != "" {
		patch["visa_application_spouse_name"] = r.SpouseName
	}
	if r.SpouseNationality != "" {
		patch["visa_application_spouse_nationality"] = r.SpouseNationality
	}
	if r.SpousePreviousNationality != "" {
		patch["visa_application_spouse_previous_nationality"] = r.SpousePreviousNationality
	}
	if r.SpousePlaceOfBirth != "" {
		patch["visa_application_spouse_place_of_birth"] = r.SpousePlaceOfBirth
	}
	if r.SpouseCountryOfBirth != "" {
		patch["visa_application_spouse_country_of_birth"] = r.SpouseCountryOfBirth
	}
	return patch
}

// ---------------------------------------------------------
// Step 4 — group D (text fields; files are bound separately)
// ---------------------------------------------------------

type StepFourRequest struct {
	TypeOfVisa              string `json:"type_of_visa" form:"type_of_visa"`
	DurationOfVisa          int    `json:"duration_of_visa" form:"duration_of_visa"`
	DurationOfStay          int    `json:"duration_of_stay" form:"duration_of_stay"`
	NumberOfEntries         string `json:"number_of_entries" form:"number_of_entries"`
	PortOfArrival           string `json:"port_of_arrival" form:"port_of_arrival"`
	PlaceLikelyToBeVisited  string `json:"place_likely_to_be_visited" form:"place_likely_to_be_visited"`
	PlaceLikelyToBeVisited2 string `json:"place_likely_to_be_visited_2" form:"place_likely_to_be_visited_2"`
	ExpectedPortOfExit      string `json:"expected_port_of_exit" form:"expected_port_of_exit"`

	HaveVisitedIndia  string `json:"have_visited_india" form:"have_visited_india"`
	PermissionRefused string `json:"permission_refused" form:"permission_refused"`
	CountriesVisited  string `json:"countries_visited" form:"countries_visited"`

	ReferenceNameIndia    string `json:"reference_name_india" form:"reference_name_india"`
	ReferencePhoneIndia   string `json:"reference_phone_india" form:"reference_phone_india"`
	ReferenceAddressIndia string `json:"reference_address_india" form:"reference_address_india"`
	ReferenceName         string `json:"reference_name" form:"reference_name"`
	ReferencePhone        string `json:"reference_phone" form:"reference_phone"`
	ReferenceAddress      string `json:"reference_address" form:"reference_address"`
}

func (r *StepFourRequest) Normalize() {
	r.TypeOfVisa = trim(r.TypeOfVisa)
	r.NumberOfEntries = trim(r.NumberOfEntries)
	r.PortOfArrival = trim(r.PortOfArrival)
	r.PlaceLikelyToBeVisited = trim(r.PlaceLikelyToBeVisited)
	r.PlaceLikelyToBeVisited2 = trim(r.PlaceLikelyToBeVisited2)
	r.ExpectedPortOfExit = trim(r.ExpectedPortOfExit)
	r.HaveVisitedIndia = trim(r.HaveVisitedIndia)
	r.PermissionRefused = trim(r.PermissionRefused)
	r.CountriesVisited = trim(r.CountriesVisited)
	r.ReferenceNameIndia = trim(r.ReferenceNameIndia)
	r.ReferencePhoneIndia = trim(r.ReferencePhoneIndia)
	r.ReferenceAddressIndia = trim(r.ReferenceAddressIndia)
	r.ReferenceName = trim(r.ReferenceName)
	r.ReferencePhone = trim(r.ReferencePhone)
	r.ReferenceAddress = trim(r.ReferenceAddress)
}

// ToPatch covers the text columns only; the controller adds the stored file
// URL/key columns after a successful upload.
func (r StepFourRequest) ToPatch() map[string]interface{} {
	patch := map[string]interface{}{
		"visa_application_type_of_visa":               r.TypeOfVisa,
		"visa_application_duration_of_visa":           r.DurationOfVisa,
		"visa_application_duration_of_stay":           r.DurationOfStay,
		"visa_application_number_of_entries":          r.NumberOfEntries,
		"visa_application_port_of_arrival":            r.PortOfArrival,
		"visa_application_place_likely_to_be_visited": r.PlaceLikelyToBeVisited,
		"visa_application_expected_port_of_exit":      r.ExpectedPortOfExit,
		"visa_application_have_visited_india":         r.HaveVisitedIndia,
		"visa_application_permission_refused":         r.PermissionRefused,
		"visa_application_reference_name_india":       r.ReferenceNameIndia,
		"visa_application_reference_phone_india":      r.ReferencePhoneIndia,
		"visa_application_reference_address_india":    r.ReferenceAddressIndia,
		"visa_application_reference_name":             r.ReferenceName,
		"visa_application_reference_phone":            r.ReferencePhone,
		"visa_application_reference_address":          r.ReferenceAddress,
		"visa_application_progress":                   model.ProgressStep4Done,
	}
	if r.PlaceLikelyToBeVisited2 != "" {
		patch["visa_application_place_likely_to_be_visited_2"] = r.PlaceLikelyToBeVisited2
	}
	if r.CountriesVisited != "" {
		patch["visa_application_countries_visited"] = r.CountriesVisited
	}
	return patch
}
