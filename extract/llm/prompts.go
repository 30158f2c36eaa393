package llm

import (
	"fmt"
	"strings"

	"github.com/inklab/docstream/extract"
)

const keywordResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "keywords": {
      "type": "array",
      "items": {
        "type": "string",
        "pattern": "^[a-z]+( [a-z]+)*$"
      }
    }
  },
  "required": ["keywords"],
  "additionalProperties": false
}`

const keywordPromptTemplate = `Extract the most relevant keywords and keyphrases from the given document text and return them as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Keywords must be lowercase, 1-3 words each.
- Return at most %d keywords, most relevant first.
- Include only terms that actually occur in or are clearly implied by the text. Do not hallucinate.
- If no keywords can be identified, return "keywords": [].
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "Semantic indexing improves information retrieval by focusing on the meaning of words."
Output:
{
  "keywords": ["semantic indexing", "information retrieval", "meaning"]
}`

const entityResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "entities": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "text": {
            "type": "string"
          },
          "label": {
            "type": "string"
          }
        },
        "required": ["text", "label"],
        "additionalProperties": false
      }
    }
  },
  "required": ["entities"],
  "additionalProperties": false
}`

const entityPromptTemplate = `Extract the named entities from the given document text and return them as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- The label field must match exactly one of the listed values: %s.
- The text field must be the entity exactly as written in the document, including capitalization.
- List entities in the order they appear in the document.
- Include only entities that are explicitly mentioned. Do not hallucinate.
- If no entities can be identified, return "entities": [].
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "Semantic Indexing Foundations was written by Dr. A. Smith at MIT in 2024."
Output:
{
  "entities": [
    {"text":"Dr. A. Smith","label":"PERSON"},
    {"text":"MIT","label":"ORG"},
    {"text":"2024","label":"DATE"}
  ]
}`

// buildKeywordPrompt returns the system prompt for keyword extraction.
func buildKeywordPrompt(maxKeywords int) string {
	return fmt.Sprintf(keywordPromptTemplate, keywordResponseSchema, maxKeywords)
}

// buildEntityPrompt returns the system prompt for entity extraction.
func buildEntityPrompt() string {
	return fmt.Sprintf(entityPromptTemplate, entityResponseSchema,
		strings.Join(extract.EntityLabels, ", "))
}
