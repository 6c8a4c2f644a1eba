package constvars

const (
	ResponseUnknown = "unknown"

	PatientFoundMessage       = "Patient found: %s"
	OTPSentMessage            = "OTP sent to %s."
	OTPResentMessage          = "New OTP sent to %s."
	OTPDemoSuffixMessage      = " Code: %s (Demo)"
	OTPVerifiedMessage        = "OTP verified successfully!"
	PatientDeniedMessage      = "Please enter the correct Patient ID."
	LogoutSuccessMessage      = "You have been logged out."
	VerificationStatusMessage = "verification status retrieved"
	RecordsRetrievedMessage   = "records retrieved successfully"
	UploadSuccessMessage      = "Successfully uploaded %d document(s)!"
	HealthyMessage            = "ok"
	NoRecordsPlaceholder      = "No records found for this patient."
	NotAvailablePlaceholder   = "N/A"
	ViewDocumentLabel         = "View Document"
	ViewFullSizeLabel         = "Click to view full size"
	UploadedAtLabel           = "Uploaded: %s"
	NotesLabel                = "Notes: %s"
)
