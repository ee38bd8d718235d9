package pages

// User-facing strings.
const (
	MsgInvalidCredentials  = "Invalid username or password"
	MsgSignupSuccess       = "Account created successfully! Please login."
	MsgSignupInvalid       = "Passwords don't match or are too short (min 6 characters)"
	MsgLoginRequired       = "Please login to continue"
	MsgDemoHint            = "Use demo/demo123 for quick access"
	MsgReplayed            = "Video replayed!"
	MsgNoResults           = "No results found. Try a different search term."
	MsgProfileSaved        = "Profile updated successfully!"
	MsgPasswordReset       = "Password reset email sent!"
	MsgPhotoUpload         = "Photo upload would be implemented here"
	MsgProgressReset       = "Progress reset successfully!"
	MsgConfirmReset        = "Please confirm: I understand this will reset all my progress"
	MsgSettingsSaved       = "Settings saved successfully!"
	MsgThemeUpdated        = "Theme updated!"
	MsgExportReady         = "Your data export is being prepared..."
	MsgDeleteAccount       = "Account deletion would be implemented here with proper confirmation."
	MsgUnsupportedImage    = "Unsupported file type. Please upload a PNG or JPG image."
	MsgAnalysisInterrupted = "Analysis was interrupted. Please try again."
	MsgChatCleared         = "Chat cleared."

	Footer = "Signaura - Making sign language accessible to everyone"
)
