package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   visa_applications

   One wide record per applicant. Field groups map to the
   four wizard steps; group B-D columns stay NULL until
   their step is submitted.
======================================================= */

type ApplicationStatus string

const (
	StatusInProgress ApplicationStatus = "in_progress"
	StatusCompleted  ApplicationStatus = "completed"
)

// Progress is set explicitly by each successful step update. Legacy rows
// created before this column existed are resolved from field presence
// instead (see service.ResolveStep).
type ApplicationProgress string

const (
	ProgressStep1Done ApplicationProgress = "step1_done"
	ProgressStep2Done ApplicationProgress = "step2_done"
	ProgressStep3Done ApplicationProgress = "step3_done"
	ProgressStep4Done ApplicationProgress = "step4_done"
)

type VisaApplicationModel struct {
	VisaApplicationID   uuid.UUID `json:"visa_application_id" gorm:"column:visa_application_id;type:uuid;default:gen_random_uuid();primaryKey"`
	VisaApplicationCode string    `json:"visa_application_code" gorm:"column:visa_application_code;type:text;not null;uniqueIndex"`

	// group A (step 1, required at creation)
	VisaApplicationApplicationType     string    `json:"visa_application_application_type" gorm:"column:visa_application_application_type;type:text;not null"`
	VisaApplicationPassportType        string    `json:"visa_application_passport_type" gorm:"column:visa_application_passport_type;type:text;not null"`
	VisaApplicationFirstName           string    `json:"visa_application_first_name" gorm:"column:visa_application_first_name;type:text;not null"`
	VisaApplicationLastName            string    `json:"visa_application_last_name" gorm:"column:visa_application_last_name;type:text;not null"`
	VisaApplicationPassportNumber      string    `json:"visa_application_passport_number" gorm:"column:visa_application_passport_number;type:text;not null;index"`
	VisaApplicationVisaType            string    `json:"visa_application_visa_type" gorm:"column:visa_application_visa_type;type:text;not null"`
	VisaApplicationNationality         string    `json:"visa_application_nationality" gorm:"column:visa_application_nationality;type:text;not null"`
	VisaApplicationPortOfArrival       string    `json:"visa_application_port_of_arrival" gorm:"column:visa_application_port_of_arrival;type:text;not null"`
	VisaApplicationDateOfBirth         time.Time `json:"visa_application_date_of_birth" gorm:"column:visa_application_date_of_birth;type:date;not null"`
	VisaApplicationEmail               string    `json:"visa_application_email" gorm:"column:visa_application_email;type:text;not null"`
	VisaApplicationExpectedArrivalDate time.Time `json:"visa_application_expected_arrival_date" gorm:"column:visa_application_expected_arrival_date;type:date;not null"`
	VisaApplicationPhoneNumber         string    `json:"visa_application_phone_number" gorm:"column:visa_application_phone_number;type:text;not null"`
	VisaApplicationTimeZone            *string   `json:"visa_application_time_zone" gorm:"column:visa_application_time_zone;type:text"`

	// group B (step 2)
	VisaApplicationSurname                    *string    `json:"visa_application_surname" gorm:"column:visa_application_surname;type:text"`
	VisaApplicationGivenName                  *string    `json:"visa_application_given_name" gorm:"column:visa_application_given_name;type:text"`
	VisaApplicationNameChange                 bool       `json:"visa_application_name_change" gorm:"column:visa_application_name_change;not null;default:false"`
	VisaApplicationSex                        *string    `json:"visa_application_sex" gorm:"column:visa_application_sex;type:text"`
	VisaApplicationTownCityOfBirth            *string    `json:"visa_application_town_city_of_birth" gorm:"column:visa_application_town_city_of_birth;type:text"`
	VisaApplicationCountryOfBirth             *string    `json:"visa_application_country_of_birth" gorm:"column:visa_application_country_of_birth;type:text"`
	VisaApplicationCitizenshipNationalIDNo    *string    `json:"visa_application_citizenship_national_id_no" gorm:"column:visa_application_citizenship_national_id_no;type:text"`
	VisaApplicationReligion                   *string    `json:"visa_application_religion" gorm:"column:visa_application_religion;type:text"`
	VisaApplicationVisibleIdentificationMarks *string    `json:"visa_application_visible_identification_marks" gorm:"column:visa_application_visible_identification_marks;type:text"`
	VisaApplicationEduQualification           *string    `json:"visa_application_edu_qualification" gorm:"column:visa_application_edu_qualification;type:text"`
	VisaApplicationLivedTwoYears              *string    `json:"visa_application_lived_two_years" gorm:"column:visa_application_lived_two_years;type:text"`
	VisaApplicationPlaceOfIssue               *string    `json:"visa_application_place_of_issue" gorm:"column:visa_application_place_of_issue;type:text"`
	VisaApplicationDateOfIssue                *time.Time `json:"visa_application_date_of_issue" gorm:"column:visa_application_date_of_issue;type:date"`
	VisaApplicationDateOfExpiry               *time.Time `json:"visa_application_date_of_expiry" gorm:"column:visa_application_date_of_expiry;type:date"`

	// group C (step 3)
	VisaApplicationHouseStreet               *string `json:"visa_application_house_street" gorm:"column:visa_application_house_street;type:text"`
	VisaApplicationVillageCity               *string `json:"visa_application_village_city" gorm:"column:visa_application_village_city;type:text"`
	VisaApplicationCountry                   *string `json:"visa_application_country" gorm:"column:visa_application_country;type:text"`
	VisaApplicationStateProvince             *string `json:"visa_application_state_province" gorm:"column:visa_application_state_province;type:text"`
	VisaApplicationPostalCode                *string `json:"visa_application_postal_code" gorm:"column:visa_application_postal_code;type:text"`
	VisaApplicationMobileNumber              *string `json:"visa_application_mobile_number" gorm:"column:visa_application_mobile_number;type:text"`
	VisaApplicationPermanentHouseStreet      *string `json:"visa_application_permanent_house_street" gorm:"column:visa_application_permanent_house_street;type:text"`
	VisaApplicationPermanentVillageCity      *string `json:"visa_application_permanent_village_city" gorm:"column:visa_application_permanent_village_city;type:text"`
	VisaApplicationPermanentStateProvince    *string `json:"visa_application_permanent_state_province" gorm:"column:visa_application_permanent_state_province;type:text"`
	VisaApplicationFatherFullName            *string `json:"visa_application_father_full_name" gorm:"column:visa_application_father_full_name;type:text"`
	VisaApplicationFatherNationality         *string `json:"visa_application_father_nationality" gorm:"column:visa_application_father_nationality;type:text"`
	VisaApplicationFatherPreviousNationality *string `json:"visa_application_father_previous_nationality" gorm:"column:visa_application_father_previous_nationality;type:text"`
	VisaApplicationFatherPlaceOfBirth        *string `json:"visa_application_father_place_of_birth" gorm:"column:visa_application_father_place_of_birth;type:text"`
	VisaApplicationFatherCountryOfBirth      *string `json:"visa_application_father_country_of_birth" gorm:"column:visa_application_father_country_of_birth;type:text"`
	VisaApplicationMotherFullName            *string `json:"visa_application_mother_full_name" gorm:"column:visa_application_mother_full_name;type:text"`
	VisaApplicationMotherNationality         *string `json:"visa_application_mother_nationality" gorm:"column:visa_application_mother_nationality;type:text"`
	VisaApplicationMotherPreviousNationality *string `json:"visa_application_mother_previous_nationality" gorm:"column:visa_application_mother_previous_nationality;type:text"`
	VisaApplicationMotherPlaceOfBirth        *string `json:"visa_application_mother_place_of_birth" gorm:"column:visa_application_mother_place_of_birth;type:text"`
	VisaApplicationMotherCountryOfBirth      *string `json:"visa_application_mother_country_of_birth" gorm:"column:visa_application_mother_country_of_birth;type:text"`
	VisaApplicationMaritalStatus             *string `json:"visa_application_marital_status" gorm:"column:visa_application_marital_status;type:text"`
	VisaApplicationSpouseName                *string `json:"visa_application_spouse_name" gorm:"column:visa_application_spouse_name;type:text"`
	VisaApplicationSpouseNationality         *string `json:"visa_application_spouse_nationality" gorm:"column:visa_application_spouse_nationality;type:text"`
	VisaApplicationSpousePreviousNationality *string `json:"visa_application_spouse_previous_nationality" gorm:"column:visa_application_spouse_previous_nationality;type:text"`
	VisaApplicationSpousePlaceOfBirth        *string `json:"visa_application_spouse_place_of_birth" gorm:"column:visa_application_spouse_place_of_birth;type:text"`
	VisaApplicationSpouseCountryOfBirth      *string `json:"visa_application_spouse_country_of_birth" gorm:"column:visa_application_spouse_country_of_birth;type:text"`
	VisaApplicationPresentOccupation         *string `json:"visa_application_present_occupation" gorm:"column:visa_application_present_occupation;type:text"`
	VisaApplicationEmployerName              *string `json:"visa_application_employer_name" gorm:"column:visa_application_employer_name;type:text"`
	VisaApplicationDesignation               *string `json:"visa_application_designation" gorm:"column:visa_application_designation;type:text"`
	VisaApplicationEmployerAddress           *string `json:"visa_application_employer_address" gorm:"column:visa_application_employer_address;type:text"`
	VisaApplicationEmployerPhone             *string `json:"visa_application_employer_phone" gorm:"column:visa_application_employer_phone;type:text"`
	VisaApplicationPastOccupation            *string `json:"visa_application_past_occupation" gorm:"column:visa_application_past_occupation;type:text"`

	// group D (step 4)
	VisaApplicationTypeOfVisa                *string `json:"visa_application_type_of_visa" gorm:"column:visa_application_type_of_visa;type:text"`
	VisaApplicationDurationOfVisa            *int    `json:"visa_application_duration_of_visa" gorm:"column:visa_application_duration_of_visa"`
	VisaApplicationDurationOfStay            *int    `json:"visa_application_duration_of_stay" gorm:"column:visa_application_duration_of_stay"`
	VisaApplicationNumberOfEntries           *string `json:"visa_application_number_of_entries" gorm:"column:visa_application_number_of_entries;type:text"`
	VisaApplicationPlaceLikelyToBeVisited    *string `json:"visa_application_place_likely_to_be_visited" gorm:"column:visa_application_place_likely_to_be_visited;type:text"`
	VisaApplicationPlaceLikelyToBeVisited2   *string `json:"visa_application_place_likely_to_be_visited_2" gorm:"column:visa_application_place_likely_to_be_visited_2;type:text"`
	VisaApplicationExpectedPortOfExit        *string `json:"visa_application_expected_port_of_exit" gorm:"column:visa_application_expected_port_of_exit;type:text"`
	VisaApplicationHaveVisitedIndia          *string `json:"visa_application_have_visited_india" gorm:"column:visa_application_have_visited_india;type:text"`
	VisaApplicationPermissionRefused         *string `json:"visa_application_permission_refused" gorm:"column:visa_application_permission_refused;type:text"`
	VisaApplicationCountriesVisited          *string `json:"visa_application_countries_visited" gorm:"column:visa_application_countries_visited;type:text"`
	VisaApplicationReferenceNameIndia        *string `json:"visa_application_reference_name_india" gorm:"column:visa_application_reference_name_india;type:text"`
	VisaApplicationReferencePhoneIndia       *string `json:"visa_application_reference_phone_india" gorm:"column:visa_application_reference_phone_india;type:text"`
	VisaApplicationReferenceAddressIndia     *string `json:"visa_application_reference_address_india" gorm:"column:visa_application_reference_address_india;type:text"`
	VisaApplicationReferenceName             *string `json:"visa_application_reference_name" gorm:"column:visa_application_reference_name;type:text"`
	VisaApplicationReferencePhone            *string `json:"visa_application_reference_phone" gorm:"column:visa_application_reference_phone;type:text"`
	VisaApplicationReferenceAddress          *string `json:"visa_application_reference_address" gorm:"column:visa_application_reference_address;type:text"`
	VisaApplicationReferencePhotoURL         *string `json:"visa_application_reference_photo_url" gorm:"column:visa_application_reference_photo_url;type:text"`
	VisaApplicationReferencePhotoObjectKey   *string `json:"visa_application_reference_photo_object_key" gorm:"column:visa_application_reference_photo_object_key;type:text"`
	VisaApplicationPassportCopyURL           *string `json:"visa_application_passport_copy_url" gorm:"column:visa_application_passport_copy_url;type:text"`
	VisaApplicationPassportCopyObjectKey     *string `json:"visa_application_passport_copy_object_key" gorm:"column:visa_application_passport_copy_object_key;type:text"`

	// system
	VisaApplicationStatus      ApplicationStatus   `json:"visa_application_status" gorm:"column:visa_application_status;type:text;not null;default:'in_progress'"`
	VisaApplicationProgress    ApplicationProgress `json:"visa_application_progress" gorm:"column:visa_application_progress;type:text;not null;default:'step1_done'"`
	VisaApplicationSubmittedAt *time.Time          `json:"visa_application_submitted_at" gorm:"column:visa_application_submitted_at"`
	VisaApplicationCreatedAt   time.Time           `json:"visa_application_created_at" gorm:"column:visa_application_created_at;not null;default:now()"`
	VisaApplicationUpdatedAt   time.Time           `json:"visa_application_updated_at" gorm:"column:visa_application_updated_at;not null;default:now()"`
}

func (VisaApplicationModel) TableName() string {
	return "visa_applications"
}
