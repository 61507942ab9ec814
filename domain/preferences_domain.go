package domain

import (
	"errors"
	"strings"
)

var (
	MessageSuccessGetSettings    = "success get settings"
	MessageSuccessUpdateSettings = "settings updated successfully"
	MessageSuccessGetNotes       = "success get shopping notes"
	MessageSuccessSaveNotes      = "notes saved"

	MessageFailedGetSettings    = "failed to get settings"
	MessageFailedUpdateSettings = "failed to update settings"
	MessageFailedGetNotes       = "failed to get shopping notes"
	MessageFailedSaveNotes      = "failed to save notes"

	ErrUnknownSetting  = errors.New("unknown setting")
	ErrInvalidDeviceID = errors.New("invalid device id")
)

const (
	SettingDarkMode             = "dark_mode"
	SettingMetricUnits          = "metric_units"
	SettingNotificationsEnabled = "notifications_enabled"
	SettingBiometricLogin       = "biometric_login"
	SettingTwoFactorAuth        = "two_factor_auth"
	SettingOfflineAccess        = "offline_access"
)

// DefaultSettings lists every known setting with its value when unset.
var DefaultSettings = map[string]bool{
	SettingDarkMode:             false,
	SettingMetricUnits:          true,
	SettingNotificationsEnabled: true,
	SettingBiometricLogin:       false,
	SettingTwoFactorAuth:        false,
	SettingOfflineAccess:        false,
}

type (
	NotesRequest struct {
		Notes string `json:"notes"`
	}

	NotesResponse struct {
		Notes string `json:"notes"`
	}
)

const maxDeviceIDLength = 128

// CheckDeviceID rejects ids that are empty, too long, or would break the
// "<namespace>:<device>:<key>" layout of local keys.
func CheckDeviceID(deviceID string) error {
	if deviceID == "" || len(deviceID) > maxDeviceIDLength {
		return ErrInvalidDeviceID
	}
	if strings.ContainsAny(deviceID, ": \t\r\n") {
		return ErrInvalidDeviceID
	}
	return nil
}
