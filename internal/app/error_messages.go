// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Quickdo

// Package app contains shared application-layer constants used across the
// quickdo market API services, handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies as {"message": "..."}. Keeping them in one place
// ensures consistent wording throughout the API.
package app

// Failure messages.
const (
	// MsgUnexpectedError is returned for every failure the client cannot
	// act on. The underlying error is only logged.
	MsgUnexpectedError = "An unexpected error occurred."

	// MsgResourceNotFound is returned for unknown routes.
	MsgResourceNotFound = "Unable to retrieve the required resource."

	// MsgInvalidApplicationKey is returned when the application-key header
	// is missing or wrong.
	MsgInvalidApplicationKey = "You don't have required permissions. Contact your administrator."

	// MsgInvalidRequestBody is returned when a JSON body cannot be decoded.
	MsgInvalidRequestBody = "Invalid request body."

	// MsgInvalidIdentifier is returned when a path parameter is not a
	// positive integer.
	MsgInvalidIdentifier = "Invalid identifier provided."

	MsgPasswordsMismatch      = "Passwords does not match."
	MsgPhoneAlreadyExists     = "An user with the same phone number already exists."
	MsgEmailAlreadyExists     = "An user with the same email address already exists."
	MsgInvalidCredentials     = "Phone number or password are invalid."
	MsgAccountDisabledLogin   = "Your account is disabled, check your inbox for activation sms or contact our support."
	MsgAccountDisabled        = "Your account is disabled."
	MsgInvalidToken           = "Invalid token."
	MsgTooManyLoginAttempts   = "Too many login attempts. Try again later."
	MsgActivationCodeRequired = "Activation code is required."
	MsgUserNotFound           = "Unable to find the given user."
	MsgVerificationFailed     = "Unable to verify the user account."
	MsgInvalidActivationCode  = "Invalid activation code provided."

	// MsgGivenTokenInvalid is returned by the auth middleware when the
	// bearer token is missing or fails verification.
	MsgGivenTokenInvalid = "Given token is invalid."

	// MsgPermissionDenied is returned by the auth middleware when the token
	// owner cannot be loaded or is not usable.
	MsgPermissionDenied = "You don't have permission to execute this query."

	// MsgAdminRequired is returned by the admin middleware.
	MsgAdminRequired = "Only administrators can do this."

	// MsgUnableToFindUser replaces MsgUserNotFound on admin routes.
	MsgUnableToFindUser = "Unable to find user."

	MsgAccountLocked           = "Update attempt cancelled. Your account has been locked."
	MsgNotAccountOwner         = "You can only manage your own account."
	MsgNewPasswordsMismatch    = "New passwords are not the same."
	MsgNewPasswordIncomplete   = "New password format is invalid."
	MsgInvalidOldPassword      = "The old password is invalid."
	MsgInvalidNotificationType = "Invalid notification type."
	MsgNotificationsForbidden  = "You can only view your notifications."
	MsgPropertiesForbidden     = "You can only view your properties."
	MsgPropertyLimitReached    = "Maximum properties authorized reached. Delete one of your property or subscribe to another plan."
	MsgPropertyNotFound        = "Unable to find property with the given id."
	MsgNotPropertyOwner        = "Unable to delete the property, you aren't the owner of the property."
	MsgNotPropertyUpdater      = "Unable to update, you aren't the owner of the property."
	MsgPropertyStatusLocked    = "You can't update property status."

	// MsgVersionIsNotSpecified is reported at startup when no application
	// version is configured.
	MsgVersionIsNotSpecified = "version is not specified"
)

// Success messages.
const (
	MsgAccountCreated      = "Account created successfully. You'll receive your activation code on your phone number."
	MsgAccountActivated    = "User account activated successfully."
	MsgUserStatusUpdated   = "User status updated successfully."
	MsgAccountUpdated      = "User account has been updated successfully."
	MsgAccountDeleted      = "User account has been deleted successfully."
	MsgUserDeleted         = "User deleted successfully."
	MsgUserCreated         = "User created successfully."
	MsgPropertyCreated     = "New property added successfully. We'll review your property data before you can process with your customers orders."
	MsgPropertyUpdated     = "Property updated successfully."
	MsgPropertyDeleted     = "Property deleted successfully."
	MsgWelcomeEmailSubject = "Account created on %s"
	MsgWelcomeNotification = "Welcome on %s"
)
