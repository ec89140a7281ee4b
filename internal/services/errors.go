// Package services holds the portal's business rules: credential and region
// checks, complaint intake and lifecycle, resolution feedback, the community
// board, and announcements. Services validate, decide, and delegate
// persistence to the repo layer; HTTP concerns stay in the handlers.
//
// Failures callers are expected to branch on are sentinel errors so the
// transport layer can map them to status codes with errors.Is.
package services

import "errors"

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAreaCodeMismatch is returned when the password checks out but the
	// supplied area code is not the one on record.
	ErrAreaCodeMismatch = errors.New("area code does not match")

	// ErrRegionMismatch is returned for valid accounts provisioned outside
	// the service region.
	ErrRegionMismatch = errors.New("account outside service region")

	// ErrMissingFields is returned when a submission lacks a required field.
	ErrMissingFields = errors.New("required field missing")

	// ErrInvalidCategory is returned for a category outside the fixed set.
	ErrInvalidCategory = errors.New("unknown complaint category")

	// ErrInvalidStatus rejects a status value outside the fixed set.
	ErrInvalidStatus = errors.New("unknown complaint status")

	// ErrComplaintNotFound is returned when no complaint has the given id.
	ErrComplaintNotFound = errors.New("complaint not found")

	// ErrComplaintNotResolved rejects feedback on complaints that are still
	// open or in progress.
	ErrComplaintNotResolved = errors.New("complaint is not resolved")

	// ErrDuplicateFeedback rejects a second feedback record for the same
	// complaint by the same citizen.
	ErrDuplicateFeedback = errors.New("feedback already submitted")

	// ErrInvalidRating rejects ratings outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrEmptyPost rejects community posts with no content.
	ErrEmptyPost = errors.New("post content is empty")

	// ErrPostNotFound is returned when no community post has the given id.
	ErrPostNotFound = errors.New("post not found")

	// ErrEmptyAnnouncement rejects announcements with no content.
	ErrEmptyAnnouncement = errors.New("announcement content is empty")
)
