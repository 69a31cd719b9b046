package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format(dateLayout)
}

func validStepOne() StepOneRequest {
	return StepOneRequest{
		ApplicationType:     "Normal",
		PassportType:        "Ordinary",
		FirstName:           "Jane",
		LastName:            "Doe",
		PassportNumber:      "X1234567",
		VisaType:            "eBUSINESS VISA",
		Nationality:         "AUSTRALIA",
		PortOfArrival:       "DELHI AIRPORT",
		DateOfBirth:         "1990-04-12",
		Email:               "jane@example.com",
		ExpectedArrivalDate: futureDate(30),
		PhoneNumber:         "+61400000000",
	}
}

func TestValidateStepOne(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		assert.Empty(t, ValidateStepOne(validStepOne()))
	})

	t.Run("missing required fields are each reported", func(t *testing.T) {
		errs := ValidateStepOne(StepOneRequest{})
		for _, field := range []string{
			"application_type", "passport_type", "first_name", "last_name",
			"passport_number", "visa_type", "nationality", "port_of_arrival",
			"date_of_birth", "email", "expected_arrival_date", "phone_number",
		} {
			assert.Contains(t, errs, field)
		}
	})

	t.Run("bad email", func(t *testing.T) {
		req := validStepOne()
		req.Email = "not-an-email"
		assert.Contains(t, ValidateStepOne(req), "email")
	})

	t.Run("unparseable date", func(t *testing.T) {
		req := validStepOne()
		req.DateOfBirth = "12/04/1990"
		assert.Contains(t, ValidateStepOne(req), "date_of_birth")
	})

	t.Run("arrival today is rejected", func(t *testing.T) {
		req := validStepOne()
		req.ExpectedArrivalDate = futureDate(0)
		assert.Contains(t, ValidateStepOne(req), "expected_arrival_date")
	})

	t.Run("arrival in the past is rejected", func(t *testing.T) {
		req := validStepOne()
		req.ExpectedArrivalDate = "2020-01-01"
		assert.Contains(t, ValidateStepOne(req), "expected_arrival_date")
	})

	t.Run("arrival tomorrow passes", func(t *testing.T) {
		req := validStepOne()
		req.ExpectedArrivalDate = futureDate(1)
		assert.Empty(t, ValidateStepOne(req))
	})

	t.Run("tourist track requires a validity window", func(t *testing.T) {
		req := validStepOne()
		req.VisaType = "eTOURIST VISA"

		req.TimeZone = ""
		assert.Contains(t, ValidateStepOne(req), "time_zone")

		req.TimeZone = "6 Months"
		assert.Contains(t, ValidateStepOne(req), "time_zone")

		req.TimeZone = "30 Days"
		assert.Empty(t, ValidateStepOne(req))

		req.TimeZone = "One Year"
		assert.Empty(t, ValidateStepOne(req))
	})

	t.Run("other visa types ignore the window", func(t *testing.T) {
		req := validStepOne()
		req.TimeZone = ""
		assert.Empty(t, ValidateStepOne(req))
	})
}

func validStepTwo() StepTwoRequest {
	return StepTwoRequest{
		Surname:          "DOE",
		GivenName:        "JANE",
		Sex:              "female",
		DateOfBirth:      "1990-04-12",
		TownCityOfBirth:  "Sydney",
		CountryOfBirth:   "AUSTRALIA",
		Religion:         "NONE",
		Nationality:      "AUSTRALIA",
		EduQualification: "GRADUATE",
		LivedTwoYears:    "Yes",
		PassportNumber:   "X1234567",
		PlaceOfIssue:     "SYDNEY",
		DateOfIssue:      "2020-01-15",
		DateOfExpiry:     "2030-01-14",
	}
}

func TestValidateStepTwo(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		assert.Empty(t, ValidateStepTwo(validStepTwo()))
	})

	t.Run("sex enum", func(t *testing.T) {
		req := validStepTwo()
		req.Sex = "unknown"
		assert.Contains(t, ValidateStepTwo(req), "sex")
	})

	t.Run("lived_two_years is Yes/No", func(t *testing.T) {
		req := validStepTwo()
		req.LivedTwoYears = "maybe"
		assert.Contains(t, ValidateStepTwo(req), "lived_two_years")
	})

	t.Run("lived_two_years accepts the stored enum values", func(t *testing.T) {
		req := validStepTwo()
		req.LivedTwoYears = "Yes"
		assert.Empty(t, ValidateStepTwo(req))

		req.LivedTwoYears = "No"
		assert.Empty(t, ValidateStepTwo(req))
	})

	t.Run("lived_two_years is case-sensitive", func(t *testing.T) {
		req := validStepTwo()
		req.LivedTwoYears = "yes"
		assert.Contains(t, ValidateStepTwo(req), "lived_two_years")
	})

	t.Run("expiry must follow issue", func(t *testing.T) {
		req := validStepTwo()
		req.DateOfIssue = "2030-01-01"
		req.DateOfExpiry = "2020-01-01"
		assert.Contains(t, ValidateStepTwo(req), "date_of_expiry")
	})
}

func validStepThree() StepThreeRequest {
	return StepThreeRequest{
		HouseStreet:            "12 Main St",
		VillageCity:            "Springfield",
		Country:                "AUSTRALIA",
		StateProvince:          "NSW",
		PostalCode:             "2000",
		MobileNumber:           "+61400000000",
		PermanentHouseStreet:   "12 Main St",
		PermanentVillageCity:   "Springfield",
		PermanentStateProvince: "NSW",
		FatherFullName:         "John Doe",
		FatherNationality:      "AUSTRALIA",
		FatherPlaceOfBirth:     "Sydney",
		FatherCountryOfBirth:   "AUSTRALIA",
		MotherFullName:         "Mary Doe",
		MotherNationality:      "AUSTRALIA",
		MotherPlaceOfBirth:     "Sydney",
		MotherCountryOfBirth:   "AUSTRALIA",
		MaritalStatus:          "single",
		PresentOccupation:      "ENGINEER",
		EmployerName:           "Acme Pty Ltd",
		Designation:            "Senior Engineer",
		EmployerAddress:        "1 George St, Sydney",
		EmployerPhone:          "+61290000000",
	}
}

func TestValidateStepThree(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		assert.Empty(t, ValidateStepThree(validStepThree()))
	})

	t.Run("marital status enum", func(t *testing.T) {
		req := validStepThree()
		req.MaritalStatus = "complicated"
		assert.Contains(t, ValidateStepThree(req), "marital_status")
	})

	t.Run("single applicant needs no spouse details", func(t *testing.T) {
		req := validStepThree()
		req.MaritalStatus = "single"
		assert.Empty(t, ValidateStepThree(req))
	})

	t.Run("married applicant must supply spouse details", func(t *testing.T) {
		req := validStepThree()
		req.MaritalStatus = "married"

		errs := ValidateStepThree(req)
		for _, field := range []string{
			"spouse_name", "spouse_nationality",
			"spouse_place_of_birth", "spouse_country_of_birth",
		} {
			assert.Contains(t, errs, field)
		}

		req.SpouseName = "Alex Doe"
		req.SpouseNationality = "AUSTRALIA"
		req.SpousePlaceOfBirth = "Melbourne"
		req.SpouseCountryOfBirth = "AUSTRALIA"
		assert.Empty(t, ValidateStepThree(req))
	})
}

func validStepFour() StepFourRequest {
	return StepFourRequest{
		TypeOfVisa:             "eBUSINESS VISA",
		DurationOfVisa:         365,
		DurationOfStay:         30,
		NumberOfEntries:        "Multiple",
		PortOfArrival:          "DELHI AIRPORT",
		PlaceLikelyToBeVisited: "New Delhi",
		ExpectedPortOfExit:     "DELHI AIRPORT",
		HaveVisitedIndia:       "No",
		PermissionRefused:      "No",
		ReferenceNameIndia:     "A. Sharma",
		ReferencePhoneIndia:    "+919800000000",
		ReferenceAddressIndia:  "Connaught Place, New Delhi",
		ReferenceName:          "Sam Doe",
		ReferencePhone:         "+61400000001",
		ReferenceAddress:       "12 Main St, Springfield",
	}
}

func TestValidateStepFour(t *testing.T) {
	photo := &FileMeta{Filename: "me.jpg", Size: 500 * 1024}
	passport := &FileMeta{Filename: "passport.pdf", Size: 2 * 1024 * 1024}

	t.Run("valid request with both files passes", func(t *testing.T) {
		assert.Empty(t, ValidateStepFour(validStepFour(), photo, passport, true, true))
	})

	t.Run("files required on first submission", func(t *testing.T) {
		errs := ValidateStepFour(validStepFour(), nil, nil, true, true)
		assert.Contains(t, errs, "reference_photo")
		assert.Contains(t, errs, "passport_copy")
	})

	t.Run("resubmission without files passes when already stored", func(t *testing.T) {
		assert.Empty(t, ValidateStepFour(validStepFour(), nil, nil, false, false))
	})

	t.Run("photo extension", func(t *testing.T) {
		bad := &FileMeta{Filename: "me.pdf", Size: 500 * 1024}
		errs := ValidateStepFour(validStepFour(), bad, passport, true, true)
		assert.Contains(t, errs, "reference_photo")
	})

	t.Run("photo size cap", func(t *testing.T) {
		big := &FileMeta{Filename: "me.jpg", Size: 3 * 1024 * 1024}
		errs := ValidateStepFour(validStepFour(), big, passport, true, true)
		assert.Contains(t, errs, "reference_photo")
	})

	t.Run("passport copy size cap", func(t *testing.T) {
		big := &FileMeta{Filename: "passport.pdf", Size: 6 * 1024 * 1024}
		errs := ValidateStepFour(validStepFour(), photo, big, true, true)
		assert.Contains(t, errs, "passport_copy")
	})

	t.Run("durations must be positive", func(t *testing.T) {
		req := validStepFour()
		req.DurationOfVisa = 0
		assert.Contains(t, ValidateStepFour(req, photo, passport, true, true), "duration_of_visa")
	})

	t.Run("travel history flags are Yes/No", func(t *testing.T) {
		req := validStepFour()
		req.HaveVisitedIndia = "never"
		req.PermissionRefused = ""

		errs := ValidateStepFour(req, photo, passport, true, true)
		assert.Contains(t, errs, "have_visited_india")
		assert.Contains(t, errs, "permission_refused")
	})

	t.Run("travel history flags accept the stored enum values", func(t *testing.T) {
		req := validStepFour()
		req.HaveVisitedIndia = "Yes"
		req.PermissionRefused = "No"
		assert.Empty(t, ValidateStepFour(req, photo, passport, true, true))
	})

	t.Run("travel history flags are case-sensitive", func(t *testing.T) {
		req := validStepFour()
		req.HaveVisitedIndia = "no"
		req.PermissionRefused = "YES"

		errs := ValidateStepFour(req, photo, passport, true, true)
		assert.Contains(t, errs, "have_visited_india")
		assert.Contains(t, errs, "permission_refused")
	})
}

func TestStepOneToModel(t *testing.T) {
	req := validStepOne()
	req.TimeZone = "30 Days"
	req.Normalize()

	m := req.ToModel()
	assert.Equal(t, "Jane", m.VisaApplicationFirstName)
	assert.Equal(t, "X1234567", m.VisaApplicationPassportNumber)
	assert.Equal(t, 1990, m.VisaApplicationDateOfBirth.Year())
	require.NotNil(t, m.VisaApplicationTimeZone)
	assert.Equal(t, "30 Days", *m.VisaApplicationTimeZone)
	assert.Equal(t, "in_progress", string(m.VisaApplicationStatus))
	assert.Equal(t, "step1_done", string(m.VisaApplicationProgress))
}

func TestNormalizeUppercasesPassportNumber(t *testing.T) {
	req := validStepOne()
	req.PassportNumber = "  x1234567 "
	req.Normalize()
	assert.Equal(t, "X1234567", req.PassportNumber)
}
