package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Category string

const (
	CategoryYouth  Category = "youth"
	CategoryFuture Category = "future"
	CategoryWorld  Category = "world"
)

func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryYouth, CategoryFuture, CategoryWorld:
		return Category(s), true
	}
	return "", false
}

type SubmissionStatus string

const (
	StatusDraft     SubmissionStatus = "draft"
	StatusSubmitted SubmissionStatus = "submitted"
)

type FilmFormat string

const (
	FormatLiveAction FilmFormat = "live-action"
	FormatAnimation  FilmFormat = "animation"
)

type CrewMember struct {
	FullName   string `bson:"fullname" json:"fullName"`
	FullNameTH string `bson:"fullname_th,omitempty" json:"fullNameTh,omitempty"`
	Role       string `bson:"role" json:"role"`
	CustomRole string `bson:"custom_role,omitempty" json:"customRole,omitempty"`
	Age        string `bson:"age,omitempty" json:"age,omitempty"`
	Phone      string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email      string `bson:"email,omitempty" json:"email,omitempty"`
	SchoolName string `bson:"school_name,omitempty" json:"schoolName,omitempty"`
	StudentID  string `bson:"student_id,omitempty" json:"studentId,omitempty"`
}

// PersonInfo is the contact block shared by every category's submitter shape.
// Age and numeric-looking values stay strings: they arrive as raw form input
// and are parsed during validation.
type PersonInfo struct {
	Name       string `bson:"name" json:"name"`
	NameTH     string `bson:"name_th,omitempty" json:"nameTh,omitempty"`
	Age        string `bson:"age" json:"age"`
	Phone      string `bson:"phone" json:"phone"`
	Email      string `bson:"email" json:"email"`
	Role       string `bson:"role" json:"role"`
	CustomRole string `bson:"custom_role,omitempty" json:"customRole,omitempty"`
}

// SubmitterBlock is the category-specific submitter identity. Exactly one
// implementation is populated per submission; the Category field on the
// Submission is the tag. The interface is sealed so a type switch over the
// three shapes is exhaustive.
type SubmitterBlock interface {
	Person() *PersonInfo
	block()
}

type YouthSubmitter struct {
	PersonInfo `bson:",inline"`
	SchoolName string `bson:"school_name" json:"schoolName"`
	StudentID  string `bson:"student_id" json:"studentId"`
}

type FutureSubmitter struct {
	PersonInfo     `bson:",inline"`
	UniversityName string `bson:"university_name" json:"universityName"`
	Faculty        string `bson:"faculty" json:"faculty"`
	UniversityID   string `bson:"university_id" json:"universityId"`
}

type WorldDirector struct {
	PersonInfo `bson:",inline"`
}

func (s *YouthSubmitter) Person() *PersonInfo  { return &s.PersonInfo }
func (s *FutureSubmitter) Person() *PersonInfo { return &s.PersonInfo }
func (s *WorldDirector) Person() *PersonInfo   { return &s.PersonInfo }

func (*YouthSubmitter) block()  {}
func (*FutureSubmitter) block() {}
func (*WorldDirector) block()   {}

// FileRef records an uploaded file in object storage.
type FileRef struct {
	FileName    string `bson:"file_name" json:"fileName"`
	Size        int64  `bson:"size" json:"size"`
	ContentType string `bson:"content_type,omitempty" json:"contentType,omitempty"`
	StorageKey  string `bson:"storage_key" json:"storageKey"`
	URL         string `bson:"url,omitempty" json:"url,omitempty"`
}

// Submission is one festival entry. The three submitter pointers encode the
// tagged union: the one matching Category is set, the other two are nil.
type Submission struct {
	ID            bson.ObjectID    `bson:"_id,omitempty" json:"-"`
	ApplicationID string           `bson:"application_id" json:"applicationId"`
	UserID        string           `bson:"user_id" json:"userId"`
	Category      Category         `bson:"category" json:"category"`
	Status        SubmissionStatus `bson:"status" json:"status"`
	Nationality   string           `bson:"nationality" json:"nationality"`

	FilmTitle           string     `bson:"film_title" json:"filmTitle"`
	FilmTitleTH         string     `bson:"film_title_th,omitempty" json:"filmTitleTh,omitempty"`
	Genres              []string   `bson:"genres,omitempty" json:"genres,omitempty"`
	Format              FilmFormat `bson:"format,omitempty" json:"format,omitempty"`
	Duration            string     `bson:"duration,omitempty" json:"duration,omitempty"`
	Synopsis            string     `bson:"synopsis,omitempty" json:"synopsis,omitempty"`
	ChiangmaiConnection string     `bson:"chiangmai_connection,omitempty" json:"chiangmaiConnection,omitempty"`

	Youth  *YouthSubmitter  `bson:"youth,omitempty" json:"youth,omitempty"`
	Future *FutureSubmitter `bson:"future,omitempty" json:"future,omitempty"`
	World  *WorldDirector   `bson:"world,omitempty" json:"world,omitempty"`

	CrewMembers []CrewMember `bson:"crew_members,omitempty" json:"crewMembers,omitempty"`

	FilmFile   *FileRef `bson:"film_file,omitempty" json:"filmFile,omitempty"`
	PosterFile *FileRef `bson:"poster_file,omitempty" json:"posterFile,omitempty"`
	ProofFile  *FileRef `bson:"proof_file,omitempty" json:"proofFile,omitempty"`

	Agreement1 bool `bson:"agreement1" json:"agreement1"`
	Agreement2 bool `bson:"agreement2" json:"agreement2"`
	Agreement3 bool `bson:"agreement3" json:"agreement3"`
	Agreement4 bool `bson:"agreement4" json:"agreement4"`

	SubmissionID string     `bson:"submission_id,omitempty" json:"submissionId,omitempty"`
	CreatedAt    time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
	SubmittedAt  *time.Time `bson:"submitted_at,omitempty" json:"submittedAt,omitempty"`
}

// Block returns the populated submitter shape for the submission's category.
func (s *Submission) Block() SubmitterBlock {
	switch s.Category {
	case CategoryYouth:
		if s.Youth != nil {
			return s.Youth
		}
	case CategoryFuture:
		if s.Future != nil {
			return s.Future
		}
	case CategoryWorld:
		if s.World != nil {
			return s.World
		}
	}
	return nil
}

// FormErrors maps field keys to localized messages.
type FormErrors map[string]string

func (e FormErrors) Empty() bool { return len(e) == 0 }
