package model

import "context"

// ProfileStore defines persistence operations for user profiles.
type ProfileStore interface {
	Get(ctx context.Context, userID int64) (Profile, error)
	Upsert(ctx context.Context, userID int64, input ProfileUpdate) error
	GetStatus(ctx context.Context, userID int64) (string, error)
	SetStatus(ctx context.Context, userID int64, status string) error
}

// ProfileContacts is the fixed set of contact links on a profile.
// Omitted keys serialize as explicit nulls.
type ProfileContacts struct {
	Facebook  *string `json:"facebook"`
	GitHub    *string `json:"github"`
	Instagram *string `json:"instagram"`
	MainLink  *string `json:"mainLink"`
	Twitter   *string `json:"twitter"`
	VK        *string `json:"vk"`
	Website   *string `json:"website"`
	YouTube   *string `json:"youtube"`
}

// ProfilePhotos holds the profile photo URLs.
type ProfilePhotos struct {
	Small *string `json:"small"`
	Large *string `json:"large"`
}

// Profile is the one-to-one extension of a user identity. A user without
// a profile row still reads as a fully-defaulted profile.
type Profile struct {
	UserID                    int64           `json:"userId"`
	AboutMe                   string          `json:"aboutMe"`
	Contacts                  ProfileContacts `json:"contacts"`
	LookingForAJob            bool            `json:"lookingForAJob"`
	LookingForAJobDescription string          `json:"lookingForAJobDescription"`
	FullName                  string          `json:"fullName"`
	Status                    string          `json:"status"`
	Photos                    ProfilePhotos   `json:"photos"`
}

// ProfileUpdate carries the writable fields of a full-profile upsert.
// Status and photos are written through their own operations.
type ProfileUpdate struct {
	AboutMe                   string          `json:"aboutMe"`
	Contacts                  ProfileContacts `json:"contacts"`
	LookingForAJob            bool            `json:"lookingForAJob"`
	LookingForAJobDescription string          `json:"lookingForAJobDescription"`
	FullName                  string          `json:"fullName"`
}

// StatusMaxLength is the maximum accepted profile status length.
const StatusMaxLength = 300
