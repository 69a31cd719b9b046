package dto

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	helper "evisa_backend/internals/helpers/oss"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Must be a valid email address."
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ") + "."
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s.", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters.", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s.", fe.Param())
	default:
		return "Invalid value."
	}
}

func collect(err error, into map[string][]string) {
	if err == nil {
		return
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		into["_request"] = append(into["_request"], "Invalid request payload.")
		return
	}
	for _, fe := range verrs {
		field := fe.Field()
		into[field] = append(into[field], messageFor(fe))
	}
}

func addDateError(errs map[string][]string, field, raw string, required bool) (time.Time, bool) {
	if raw == "" {
		if required {
			errs[field] = append(errs[field], "This field is required.")
		}
		return time.Time{}, false
	}
	t, ok := parseDate(raw)
	if !ok {
		errs[field] = append(errs[field], "Must be a valid date (YYYY-MM-DD).")
		return time.Time{}, false
	}
	return t, true
}

// the stored enum for travel-history flags is the capitalized pair
func yesNo(errs map[string][]string, field, v string) {
	if v == "" {
		errs[field] = append(errs[field], "This field is required.")
		return
	}
	if v != "Yes" && v != "No" {
		errs[field] = append(errs[field], "Must be one of: Yes, No.")
	}
}

// today truncated to date, in server local time
func todayDate() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ---------------------------------------------------------

type stepOneRules struct {
	ApplicationType string `json:"application_type" validate:"required"`
	PassportType    string `json:"passport_type" validate:"required"`
	FirstName       string `json:"first_name" validate:"required,max=191"`
	LastName        string `json:"last_name" validate:"required,max=191"`
	PassportNumber  string `json:"passport_number" validate:"required,max=64"`
	VisaType        string `json:"visa_type" validate:"required"`
	Nationality     string `json:"nationality" validate:"required"`
	PortOfArrival   string `json:"port_of_arrival" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	PhoneNumber     string `json:"phone_number" validate:"required,max=32"`
}

// ValidateStepOne returns per-field messages; an empty map means the request
// may be persisted.
func ValidateStepOne(r StepOneRequest) map[string][]string {
	errs := map[string][]string{}
	collect(validate.Struct(stepOneRules{
		ApplicationType: r.ApplicationType,
		PassportType:    r.PassportType,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		PassportNumber:  r.PassportNumber,
		VisaType:        r.VisaType,
		Nationality:     r.Nationality,
		PortOfArrival:   r.PortOfArrival,
		Email:           r.Email,
		PhoneNumber:     r.PhoneNumber,
	}), errs)

	addDateError(errs, "date_of_birth", r.DateOfBirth, true)

	if arrival, ok := addDateError(errs, "expected_arrival_date", r.ExpectedArrivalDate, true); ok {
		if !arrival.After(todayDate()) {
			errs["expected_arrival_date"] = append(errs["expected_arrival_date"],
				"Expected arrival date must be after today.")
		}
	}

	// the tourist track asks for a validity window up front
	if r.VisaType == "eTOURIST VISA" {
		switch r.TimeZone {
		case "":
			errs["time_zone"] = append(errs["time_zone"], "This field is required.")
		case "30 Days", "One Year":
		default:
			errs["time_zone"] = append(errs["time_zone"], "Must be one of: 30 Days, One Year.")
		}
	}
	return errs
}

// ---------------------------------------------------------

type stepTwoRules struct {
	Surname          string `json:"surname" validate:"required,max=191"`
	GivenName        string `json:"given_name" validate:"required,max=191"`
	Sex              string `json:"sex" validate:"required,oneof=male female other"`
	TownCityOfBirth  string `json:"town_city_of_birth" validate:"required"`
	CountryOfBirth   string `json:"country_of_birth" validate:"required"`
	Religion         string `json:"religion" validate:"required"`
	Nationality      string `json:"nationality" validate:"required"`
	EduQualification string `json:"edu_qualification" validate:"required"`
	PassportNumber   string `json:"passport_number" validate:"required,max=64"`
	PlaceOfIssue     string `json:"place_of_issue" validate:"required"`
}

func ValidateStepTwo(r StepTwoRequest) map[string][]string {
	errs := map[string][]string{}
	collect(validate.Struct(stepTwoRules{
		Surname:          r.Surname,
		GivenName:        r.GivenName,
		Sex:              r.Sex,
		TownCityOfBirth:  r.TownCityOfBirth,
		CountryOfBirth:   r.CountryOfBirth,
		Religion:         r.Religion,
		Nationality:      r.Nationality,
		EduQualification: r.EduQualification,
		PassportNumber:   r.PassportNumber,
		PlaceOfIssue:     r.PlaceOfIssue,
	}), errs)

	yesNo(errs, "lived_two_years", r.LivedTwoYears)

	addDateError(errs, "date_of_birth", r.DateOfBirth, true)
	issued, okIssue := addDateError(errs, "date_of_issue", r.DateOfIssue, true)
	expires, okExpiry := addDateError(errs, "date_of_expiry", r.DateOfExpiry, true)
	if okIssue && okExpiry && !expires.After(issued) {
		errs["date_of_expiry"] = append(errs["date_of_expiry"],
			"Date of expiry must be after date of issue.")
	}
	return errs
}

// ---------------------------------------------------------

type stepThreeRules struct {
	HouseStreet   string `json:"house_street" validate:"required"`
	VillageCity   string `json:"village_city" validate:"required"`
	Country       string `json:"country" validate:"required"`
	StateProvince string `json:"state_province" validate:"required"`
	PostalCode    string `json:"postal_code" validate:"required,max=16"`
	MobileNumber  string `json:"mobile_number" validate:"required,max=32"`

	PermanentHouseStreet   string `json:"permanent_house_street" validate:"required"`
	PermanentVillageCity   string `json:"permanent_village_city" validate:"required"`
	PermanentStateProvince string `json:"permanent_state_province" validate:"required"`

	FatherFullName       string `json:"father_full_name" validate:"required"`
	FatherNationality    string `json:"father_nationality" validate:"required"`
	FatherPlaceOfBirth   string `json:"father_place_of_birth" validate:"required"`
	FatherCountryOfBirth string `json:"father_country_of_birth" validate:"required"`

	MotherFullName       string `json:"mother_full_name" validate:"required"`
	MotherNationality    string `json:"mother_nationality" validate:"required"`
	MotherPlaceOfBirth   string `json:"mother_place_of_birth" validate:"required"`
	MotherCountryOfBirth string `json:"mother_country_of_birth" validate:"required"`

	MaritalStatus string `json:"marital_status" validate:"required,oneof=single married divorced widowed"`

	PresentOccupation string `json:"present_occupation" validate:"required"`
	EmployerName      string `json:"employer_name" validate:"required"`
	Designation       string `json:"designation" validate:"required"`
	EmployerAddress   string `json:"employer_address" validate:"required"`
	EmployerPhone     string `json:"employer_phone" validate:"required,max=32"`
}

func ValidateStepThree(r StepThreeRequest) map[string][]string {
	errs := map[string][]string{}
	collect(validate.Struct(stepThreeRules{
		HouseStreet:            r.HouseStreet,
		VillageCity:            r.VillageCity,
		Country:                r.Country,
		StateProvince:          r.StateProvince,
		PostalCode:             r.PostalCode,
		MobileNumber:           r.MobileNumber,
		PermanentHouseStreet:   r.PermanentHouseStreet,
		PermanentVillageCity:   r.PermanentVillageCity,
		PermanentStateProvince: r.PermanentStateProvince,
		FatherFullName:         r.FatherFullName,
		FatherNationality:      r.FatherNationality,
		FatherPlaceOfBirth:     r.FatherPlaceOfBirth,
		FatherCountryOfBirth:   r.FatherCountryOfBirth,
		MotherFullName:         r.MotherFullName,
		MotherNationality:      r.MotherNationality,
		MotherPlaceOfBirth:     r.MotherPlaceOfBirth,
		MotherCountryOfBirth:   r.MotherCountryOfBirth,
		MaritalStatus:          r.MaritalStatus,
		PresentOccupation:      r.PresentOccupation,
		EmployerName:           r.EmployerName,
		Designation:            r.Designation,
		EmployerAddress:        r.EmployerAddress,
		EmployerPhone:          r.EmployerPhone,
	}), errs)

	// spouse details only exist for married applicants
	if r.MaritalStatus == "married" {
		spouse := map[string]string{
			"spouse_name":             r.SpouseName,
			"spouse_nationality":      r.SpouseNationality,
			"spouse_place_of_birth":   r.SpousePlaceOfBirth,
			"spouse_country_of_birth": r.SpouseCountryOfBirth,
		}
		for field, v := range spouse {
			if v == "" {
				errs[field] = append(errs[field], "This field is required.")
			}
		}
	}
	return errs
}

// ---------------------------------------------------------

// FileMeta carries just enough of a multipart file header for the pure
// validation path; nil means the part was absent.
type FileMeta struct {
	Filename string
	Size     int64
}

type stepFourRules struct {
	TypeOfVisa             string `json:"type_of_visa" validate:"required"`
	DurationOfVisa         int    `json:"duration_of_visa" validate:"required,min=1"`
	DurationOfStay         int    `json:"duration_of_stay" validate:"required,min=1"`
	NumberOfEntries        string `json:"number_of_entries" validate:"required"`
	PortOfArrival          string `json:"port_of_arrival" validate:"required"`
	PlaceLikelyToBeVisited string `json:"place_likely_to_be_visited" validate:"required"`
	ExpectedPortOfExit     string `json:"expected_port_of_exit" validate:"required"`

	ReferenceNameIndia    string `json:"reference_name_india" validate:"required"`
	ReferencePhoneIndia   string `json:"reference_phone_india" validate:"required,max=32"`
	ReferenceAddressIndia string `json:"reference_address_india" validate:"required"`
	ReferenceName         string `json:"reference_name" validate:"required"`
	ReferencePhone        string `json:"reference_phone" validate:"required,max=32"`
	ReferenceAddress      string `json:"reference_address" validate:"required"`
}

// ValidateStepFour checks the step-4 text fields plus the two uploads. The
// required flags are false when the record already holds a stored copy, so a
// resubmission without new files still passes.
func ValidateStepFour(r StepFourRequest, photo, passportCopy *FileMeta, photoRequired, passportRequired bool) map[string][]string {
	errs := map[string][]string{}
	collect(validate.Struct(stepFourRules{
		TypeOfVisa:             r.TypeOfVisa,
		DurationOfVisa:         r.DurationOfVisa,
		DurationOfStay:         r.DurationOfStay,
		NumberOfEntries:        r.NumberOfEntries,
		PortOfArrival:          r.PortOfArrival,
		PlaceLikelyToBeVisited: r.PlaceLikelyToBeVisited,
		ExpectedPortOfExit:     r.ExpectedPortOfExit,
		ReferenceNameIndia:     r.ReferenceNameIndia,
		ReferencePhoneIndia:    r.ReferencePhoneIndia,
		ReferenceAddressIndia:  r.ReferenceAddressIndia,
		ReferenceName:          r.ReferenceName,
		ReferencePhone:         r.ReferencePhone,
		ReferenceAddress:       r.ReferenceAddress,
	}), errs)

	yesNo(errs, "have_visited_india", r.HaveVisitedIndia)
	yesNo(errs, "permission_refused", r.PermissionRefused)

	checkFile(errs, "reference_photo", photo, photoRequired, helper.RulePhoto)
	checkFile(errs, "passport_copy", passportCopy, passportRequired, helper.RuleDocument)
	return errs
}

func checkFile(errs map[string][]string, field string, meta *FileMeta, required bool, rule helper.UploadRule) {
	if meta == nil {
		if required {
			errs[field] = append(errs[field], "This file is required.")
		}
		return
	}
	if msg := helper.CheckUploadMeta(meta.Filename, meta.Size, rule); msg != "" {
		errs[field] = append(errs[field], msg)
	}
}
