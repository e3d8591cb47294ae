package forms

import (
	"strings"
	"unicode"
)

// Signup is the account creation record. ConfirmPassword never leaves the
// client.
type Signup struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	WhatsApp        string `json:"whatsapp,omitempty"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
	IsStudent       bool   `json:"isStudent"`
	Role            string `json:"role"`
}

func (s Signup) Validate() error {
	var errs Errors
	errs.check("name", Name(s.Name))
	errs.check("email", Email(s.Email))
	errs.check("password", Password(s.Password))
	errs.check("confirmPassword", ConfirmPassword(func() string { return s.Password })(s.ConfirmPassword))
	return errs.Err()
}

// ValidateRemote checks only what is sent over the wire.
func (s Signup) ValidateRemote() error {
	var errs Errors
	errs.check("name", Name(s.Name))
	errs.check("email", Email(s.Email))
	errs.check("password", Password(s.Password))
	return errs.Err()
}

// Signin is the credential record.
type Signin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember,omitempty"`
}

func (s Signin) Validate() error {
	var errs Errors
	errs.check("email", Email(s.Email))
	errs.check("password", PasswordPresent(s.Password))
	return errs.Err()
}

// ForgotPassword requests a reset link.
type ForgotPassword struct {
	Email string `json:"email"`
}

func (f ForgotPassword) Validate() error {
	var errs Errors
	errs.check("email", Email(f.Email))
	return errs.Err()
}

// StudentVerification is submitted by creators who claim student status.
type StudentVerification struct {
	FullName      string `json:"fullName"`
	AcademicEmail string `json:"academicEmail"`
	CPF           string `json:"cpf"`
	Enrollment    string `json:"enrollment"`
	DateOfBirth   string `json:"dob"`
	CourseName    string `json:"courseName"`
	Institution   string `json:"institution"`
}

// StudentField describes one input of the verification form.
type StudentField struct {
	Key         string
	Label       string
	Placeholder string
}

// StudentFields lists the verification inputs in display order.
var StudentFields = []StudentField{
	{Key: "fullName", Label: "Full name", Placeholder: "Your name as it appears on the course"},
	{Key: "academicEmail", Label: "Academic email (course)", Placeholder: "email@exemplo.com"},
	{Key: "cpf", Label: "CPF", Placeholder: "000.000.000-00"},
	{Key: "enrollment", Label: "Enrollment / RA", Placeholder: "Student registration number"},
	{Key: "dob", Label: "Date of birth", Placeholder: "DD/MM/AAAA"},
	{Key: "courseName", Label: "Course name", Placeholder: "Digital Marketing Course, for example"},
	{Key: "institution", Label: "Name of institution", Placeholder: "Full name of school/platform"},
}

// Ptr returns the address of the field named key, for binding inputs.
func (s *StudentVerification) Ptr(key string) *string {
	switch key {
	case "fullName":
		return &s.FullName
	case "academicEmail":
		return &s.AcademicEmail
	case "cpf":
		return &s.CPF
	case "enrollment":
		return &s.Enrollment
	case "dob":
		return &s.DateOfBirth
	case "courseName":
		return &s.CourseName
	case "institution":
		return &s.Institution
	}
	return nil
}

// RequiredMessage is the message shown when a field is left blank.
func RequiredMessage(label string) string {
	return label + " é obrigatório"
}

func (s StudentVerification) Validate() error {
	var errs Errors
	for _, f := range StudentFields {
		errs.check(f.Key, Required(RequiredMessage(f.Label))(*s.Ptr(f.Key)))
	}
	return errs.Err()
}

// CreatorProfile is the editable creator profile.
type CreatorProfile struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	State      string   `json:"state"`
	Role       string   `json:"role"`
	Languages  []string `json:"languages"`
	Gender     string   `json:"gender,omitempty"`
	Categories []string `json:"categories"`
}

// Genders are the options offered for CreatorProfile.Gender.
var Genders = []string{"Female", "Male", "Non-binary", "Prefer not to say"}

// DefaultCreatorProfile is shown before a profile has been saved.
func DefaultCreatorProfile() CreatorProfile {
	return CreatorProfile{
		Name:       "Andrii Kerrn",
		Email:      "andriikerrn@gmail.com",
		State:      "São Paulo",
		Role:       "UGC e Influencer",
		Languages:  []string{"Portuguese", "English"},
		Gender:     "Female",
		Categories: []string{"Fashion", "Lifestyle", "Beauty"},
	}
}

func (p CreatorProfile) Validate() error {
	var errs Errors
	errs.check("name", Required("Full Name é obrigatório")(p.Name))
	errs.check("email", Email(p.Email))
	return errs.Err()
}

// BrandProfile is the editable brand profile.
type BrandProfile struct {
	BrandName   string `json:"brandName"`
	Email       string `json:"email"`
	CompanyName string `json:"companyName"`
	Instagram   string `json:"instagram"`
	Description string `json:"description"`
}

// DefaultBrandProfile is shown before a profile has been saved.
func DefaultBrandProfile() BrandProfile {
	return BrandProfile{
		BrandName:   "Awesome Brand",
		Email:       "contato@marcaincrivel.com",
		CompanyName: "Amazing Brand LTDA",
		Instagram:   "@marcaincrivel",
		Description: "Sustainable fashion brand focused on timeless, quality pieces.",
	}
}

func (p BrandProfile) Validate() error {
	var errs Errors
	errs.check("brandName", Required("Brand Name é obrigatório")(p.BrandName))
	errs.check("email", Email(p.Email))
	return errs.Err()
}

// PasswordChange is the brand account's change password dialog.
type PasswordChange struct {
	Old     string `json:"old"`
	New     string `json:"new"`
	Confirm string `json:"-"`
}

func (p PasswordChange) Validate() error {
	var errs Errors
	errs.check("old", PasswordPresent(p.Old))
	errs.check("new", Password(p.New))
	errs.check("confirm", ConfirmPassword(func() string { return p.New })(p.Confirm))
	return errs.Err()
}

// ParseList splits a comma separated input, dropping blanks.
func ParseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Initials returns the upper-cased first letter of each word of name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}
