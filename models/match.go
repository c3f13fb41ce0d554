package models

// Match records a confirmed mutual like. PairID is the canonical key for
// the unordered user pair, so the table's uniqueness guarantee holds no
// matter which side completed the match.
type Match struct {
	PairID    string `dynamodbav:"pairId" json:"pairId"` // Partition key
	MatchID   string `dynamodbav:"matchId" json:"matchId"`
	UserAID   string `dynamodbav:"userAId" json:"userAId"` // Lexicographically smaller id
	UserBID   string `dynamodbav:"userBId" json:"userBId"`
	Status    string `dynamodbav:"status" json:"status"`
	MatchedAt string `dynamodbav:"matchedAt" json:"matchedAt"`
}

// MatchesTable is the DynamoDB table name for matches
const MatchesTable = "Matches"

// GSI names used to list matches per user
const (
	UserAIndex = "userAId-index"
	UserBIndex = "userBId-index"
)

// CanonicalPair orders two user ids so {A,B} and {B,A} resolve to the
// same ordered pair.
func CanonicalPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

// PairKey builds the canonical storage key for an unordered user pair.
func PairKey(a, b string) string {
	lo, hi := CanonicalPair(a, b)
	return lo + "#" + hi
}

// OtherUser returns the counterpart of userID in the match.
func (m Match) OtherUser(userID string) string {
	if m.UserAID == userID {
		return m.UserBID
	}
	return m.UserAID
}
