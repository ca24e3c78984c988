package mappings

// ConversationAnalysisMapping represents the Elasticsearch mapping for
// conversation analysis documents
type ConversationAnalysisMapping struct {
	Settings ConversationAnalysisSettings `json:"settings"`
	Mappings ConversationAnalysisMappings `json:"mappings"`
}

// ConversationAnalysisSettings defines index-level settings
type ConversationAnalysisSettings struct {
	BaseSettings
}

// ConversationAnalysisMappings defines the field mappings for conversation
// analysis documents
type ConversationAnalysisMappings struct {
	Properties ConversationAnalysisProperties `json:"properties"`
}

// ConversationAnalysisProperties defines the properties for each field in the
// conversation analysis mapping. One document per user holds the latest
// analysis output.
type ConversationAnalysisProperties struct {
	// Core identifier
	UserID Field `json:"user_id"`

	// Extracted signals
	Topics      Field `json:"topics"`      // keyword array
	Interests   Field `json:"interests"`   // keyword array
	Preferences Field `json:"preferences"` // keyword array
	History     Field `json:"history"`     // keyword array

	// Raw excerpts kept for keyword fallback when no topics were extracted
	Snippets Field `json:"snippets"`

	// Analysis metadata
	MessageCount Field `json:"message_count"`
	Dimensions   Field `json:"dimensions"` // object: conviction, intuition, contribution
	AnalyzedAt   Field `json:"analyzed_at"`
}

// NewConversationAnalysisMapping creates a new conversation analysis mapping
// with default settings
func NewConversationAnalysisMapping() *ConversationAnalysisMapping {
	return &ConversationAnalysisMapping{
		Settings: ConversationAnalysisSettings{
			BaseSettings: DefaultSettings(),
		},
		Mappings: ConversationAnalysisMappings{
			Properties: ConversationAnalysisProperties{
				UserID: Field{
					Type: "keyword",
				},
				Topics: Field{
					Type: "keyword",
				},
				Interests: Field{
					Type: "keyword",
				},
				Preferences: Field{
					Type: "keyword",
				},
				History: Field{
					Type: "keyword",
				},
				Snippets: Field{
					Type:     "text",
					Analyzer: "standard",
				},
				MessageCount: Field{
					Type: "integer",
				},
				Dimensions: Field{
					Type: "object",
				},
				AnalyzedAt: Field{
					Type:   "date",
					Format: "strict_date_optional_time||epoch_millis",
				},
			},
		},
	}
}
