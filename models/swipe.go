package models

// Swipe is one like/pass decision made by actorId about targetId.
// The table is keyed (actorId, targetId), so at most one row exists per
// ordered pair; a changed decision overwrites the row in place.
type Swipe struct {
	ActorID   string `dynamodbav:"actorId" json:"actorId"`   // Partition key
	TargetID  string `dynamodbav:"targetId" json:"targetId"` // Sort key
	Liked     bool   `dynamodbav:"liked" json:"liked"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt string `dynamodbav:"updatedAt" json:"updatedAt"`
}

// SwipesTable is the DynamoDB table name for the swipe ledger
const SwipesTable = "Swipes"
