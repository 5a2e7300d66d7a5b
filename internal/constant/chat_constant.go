package constant

// Speaker labels used in the session transcript fed to the LLM.
const (
	TranscriptSpeakerUser      = "User"
	TranscriptSpeakerAssistant = "Assistant"
)

// Canned replies for degraded paths. The conversation must keep moving even
// when a collaborator is down, so these are returned instead of errors.
const (
	LLMUnavailableReply    = "There was an issue communicating with the local AI engine."
	PersistenceFailedReply = "Something went wrong saving your request. Please try again."
	NoRagContextPassage    = "I don't have enough information about that yet."
)

// OllamaGenerateEndpoint is the completion endpoint of a local Ollama server.
const OllamaGenerateEndpoint = "/api/generate"

// LLMSystemInstruction is the fixed preamble of every fallback prompt.
const LLMSystemInstruction = `You are a professional Real Estate & Property Services Assistant.

RULES:
- NEVER hallucinate.
- If unsure, ask a follow-up question.
- Keep answers short and helpful.
- Use the grounding context below.`
