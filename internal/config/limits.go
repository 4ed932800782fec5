package config

const (
	// MaxFolderNameLength is the maximum length for folder names.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (names should be short and descriptive).
	MaxFolderNameLength = 255

	// MaxCreativeNameLength is the maximum length for creative names.
	// Same as folder names for consistency.
	MaxCreativeNameLength = 255

	// MaxCampaignNameLength is the maximum length for campaign names.
	MaxCampaignNameLength = 255

	// MaxAudienceNameLength is the maximum length for audience names.
	MaxAudienceNameLength = 255

	// MaxLeadNameLength is the maximum length for lead names.
	MaxLeadNameLength = 255

	// MaxGoalNameLength is the maximum length for goal names.
	MaxGoalNameLength = 255
)
