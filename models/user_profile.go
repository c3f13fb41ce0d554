package models

// UserProfile defines the structure for traveler profiles
type UserProfile struct {
	UserID                string   `dynamodbav:"userId" json:"userId"`
	EmailID               string   `dynamodbav:"emailId,omitempty" json:"emailId,omitempty"`
	FullName              string   `dynamodbav:"fullName,omitempty" json:"fullName,omitempty"`
	Bio                   string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	Location              string   `dynamodbav:"location,omitempty" json:"location,omitempty"`
	Age                   int      `dynamodbav:"age,omitempty" json:"age,omitempty"`
	PhotoURL              string   `dynamodbav:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	TravelStyle           string   `dynamodbav:"travelStyle,omitempty" json:"travelStyle,omitempty"`
	Interests             []string `dynamodbav:"interests,omitempty" json:"interests,omitempty"`
	PreferredDestinations []string `dynamodbav:"preferredDestinations,omitempty" json:"preferredDestinations,omitempty"`
	LastActiveAt          string   `dynamodbav:"lastActiveAt,omitempty" json:"lastActiveAt,omitempty"`
	CreatedAt             string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt             string   `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// TravelProfilesTable is the DynamoDB table name for traveler profiles
const TravelProfilesTable = "TravelProfiles"
