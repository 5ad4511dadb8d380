package catalogue

import (
	"github.com/voxline/delog/internal/config"
)

// Built-in removal catalogue for the voice-call handler.
//
// Every rule targets one specific verbose logger call. Error-severity calls
// and performance calls (messages starting with the ⏱️ stopwatch marker) are
// deliberately absent: the stripper preserves them by never matching them.
var defaultRules = []Rule{
	// Init
	{Category: "Init", Severity: config.SeverityInfo, Expr: `logger\.info\('🔌 INIT CONNECTION \(v3\)',.*?\);`},
	{Category: "Init", Severity: config.SeverityInfo, Expr: `logger\.info\('✅ STARTING SESSION \(v3\)'\);`},
	{Category: "Init", Severity: config.SeverityInfo, Expr: `logger\.info\('✅ AGENT LOADED \(v3\)',.*?\);`},
	{Category: "Init", Severity: config.SeverityInfo, Expr: `logger\.info\('✅ INIT COMPLETE \(v4\)'\);`},

	// Deepgram streaming
	{Category: "Deepgram streaming", Severity: config.SeverityInfo, Expr: `logger\.info\('🎤 Creating Deepgram streaming connection with VAD'\);`},
	{Category: "Deepgram streaming", Severity: config.SeverityInfo, Expr: `logger\.info\('✅ Deepgram FINAL transcript',.*?\);`},
	{Category: "Deepgram streaming", Severity: config.SeverityDebug, Expr: `logger\.debug\('⏳ Deepgram PARTIAL',.*?\);`},
	{Category: "Deepgram streaming", Severity: config.SeverityInfo, Expr: `logger\.info\('✅ Deepgram streaming STT initialized'\);`},
	{Category: "Deepgram streaming", Severity: config.SeverityWarn, Expr: `logger\.warn\('⚠️ Deepgram not available - using batch STT \(higher latency\)'\);`},

	// VAD
	{Category: "VAD", Severity: config.SeverityInfo, Expr: `logger\.info\('🔇 VAD: Speech ended - processing transcript'\);`},
	{Category: "VAD", Severity: config.SeverityWarn, Expr: `logger\.warn\('⚠️ VAD: Speech ended but no transcript available'\);`},
	{Category: "VAD", Severity: config.SeverityInfo, Expr: `logger\.info\('🔔 SILENCE \(v4\) - Deepgram ready',.*?\);`, Multiline: true},

	// Event handling
	{Category: "Event handling", Severity: config.SeverityInfo, Expr: `logger\.info\('Exotel event',.*?\);`, Multiline: true},
	{Category: "Event handling", Severity: config.SeverityWarn, Expr: `logger\.warn\('Unknown Exotel event',.*?\);`, Multiline: true},
	{Category: "Event handling", Severity: config.SeverityInfo, Expr: `logger\.info\('Exotel stream started',.*?\);`, Multiline: true},
	{Category: "Event handling", Severity: config.SeverityWarn, Expr: `logger\.warn\('Media event received but no media data',.*?\);`, Multiline: true},
	{Category: "Event handling", Severity: config.SeverityInfo, Expr: `logger\.info\('Captured stream_sid from media event',.*?\);`, Multiline: true},
	{Category: "Event handling", Severity: config.SeverityDebug, Expr: `logger\.debug\('Ignoring outbound media track',.*?\);`, Multiline: true},

	// Speech processing
	{Category: "Speech processing", Severity: config.SeverityInfo, Expr: `logger\.info\('🎤 SPEECH START \(v3\)',.*?\);`, Multiline: true},
	{Category: "Speech processing", Severity: config.SeverityInfo, Expr: `logger\.info\('🛑 STOP \(v3\)',.*?\);`},
	{Category: "Speech processing", Severity: config.SeverityInfo, Expr: `logger\.info\('⚡ PROCESSING \(v3\)',.*?\);`},
	{Category: "Speech processing", Severity: config.SeverityWarn, Expr: `logger\.warn\('❌ SKIP \(v3\)',.*?\);`, Multiline: true},
	{Category: "Speech processing", Severity: config.SeverityInfo, Expr: `logger\.info\('⏸️ STOP HANDLED \(v3\) - waiting for AI response'\);`},

	// Mark and greeting
	{Category: "Mark and greeting", Severity: config.SeverityInfo, Expr: `logger\.info\('✅ MARK RECEIVED from Exotel \(v13\)',.*?\);`, Multiline: true},
	{Category: "Mark and greeting", Severity: config.SeverityInfo, Expr: `logger\.info\('✅ MARK SENT after greeting \(v13\).*?\);`},
	{Category: "Mark and greeting", Severity: config.SeverityWarn, Expr: `logger\.warn\('Failed to send mark message after greeting',.*?\);`, Multiline: true},
	{Category: "Mark and greeting", Severity: config.SeverityInfo, Expr: `logger\.info\('✅ MARK SENT after response \(v[0-9]+\).*?\);`},
	{Category: "Mark and greeting", Severity: config.SeverityWarn, Expr: `logger\.warn\('Failed to send mark message',.*?\);`, Multiline: true},

	// Greeting
	{Category: "Greeting", Severity: config.SeverityInfo, Expr: `logger\.info\('🎤 GENERATING GREETING \(v13\)',.*?\);`, Multiline: true},
	{Category: "Greeting", Severity: config.SeverityInfo, Expr: `logger\.info\('✅ GREETING AUDIO READY \(v13\)',.*?\);`, Multiline: true},
	{Category: "Greeting", Severity: config.SeverityInfo, Expr: `logger\.info\('✅ GREETING SENT \(v13\)'\);`},

	// LLM
	{Category: "LLM", Severity: config.SeverityInfo, Expr: `logger\.info\('⚡ EARLY LLM START \(v5 - Parallel\)',.*?\);`, Multiline: true},
	{Category: "LLM", Severity: config.SeverityInfo, Expr: `logger\.info\('🚀 EARLY LLM PROCESSING \(v5\)',.*?\);`, Multiline: true},
	{Category: "LLM", Severity: config.SeverityInfo, Expr: `logger\.info\('⚡ LLM streaming started \(while user still speaking\)'\);`},
	{Category: "LLM", Severity: config.SeverityInfo, Expr: `logger\.info\('⚡ Early LLM sentence ready',.*?\);`},
	{Category: "LLM", Severity: config.SeverityInfo, Expr: `logger\.info\('✅ Early LLM complete',.*?\);`, Multiline: true},

	// Transcript processing
	{Category: "Transcript processing", Severity: config.SeverityInfo, Expr: `logger\.info\('⚡ PROCESS FROM TRANSCRIPT \(v5 - Parallel\)',.*?\);`, Multiline: true},
	{Category: "Transcript processing", Severity: config.SeverityWarn, Expr: `logger\.warn\('❌ PROCESS ABORT \(v5\) - no transcript'\);`},
	{Category: "Transcript processing", Severity: config.SeverityInfo, Expr: `logger\.info\('✅ Early LLM already processed \(v5\)',.*?\);`, Multiline: true},
	{Category: "Transcript processing", Severity: config.SeverityInfo, Expr: `logger\.info\('⚡ PARALLEL PROCESSING COMPLETE - Response already sent!'\);`},
	{Category: "Transcript processing", Severity: config.SeverityInfo, Expr: `logger\.info\('👤 USER \(v[0-9]+ - Streaming\):',.*?\);`},
	{Category: "Transcript processing", Severity: config.SeverityInfo, Expr: `logger\.info\('👤 USER \(v[0-9]+\):',.*?\);`},
	{Category: "Transcript processing", Severity: config.SeverityInfo, Expr: `logger\.info\('🤖 AI \(v[0-9]+ - Streaming\):',.*?\);`},
	{Category: "Transcript processing", Severity: config.SeverityInfo, Expr: `logger\.info\('🤖 AI \(v[0-9]+\):',.*?\);`},

	// End call
	{Category: "End call", Severity: config.SeverityInfo, Expr: `logger\.info\('🔚 END CALL PHRASE DETECTED',.*?\);`, Multiline: true},

	// Prompt building
	{Category: "Prompt building", Severity: config.SeverityInfo, Expr: `logger\.info\('🤖 Building LLM prompt',.*?\);`, Multiline: true},
	{Category: "Prompt building", Severity: config.SeverityDebug, Expr: `logger\.debug\('System prompt built',.*?\);`, Multiline: true},

	// RAG
	{Category: "RAG", Severity: config.SeverityInfo, Expr: `logger\.info\('🔍 RAG: Query is relevant, searching knowledge base'\);`},
	{Category: "RAG", Severity: config.SeverityInfo, Expr: `logger\.info\('✅ RAG: Found relevant context',.*?\);`, Multiline: true},
	{Category: "RAG", Severity: config.SeverityInfo, Expr: `logger\.info\('⚠️ RAG: No relevant context found'\);`},
	{Category: "RAG", Severity: config.SeverityDebug, Expr: `logger\.debug\('RAG: Query not relevant for KB \(conversational/greeting\)'\);`},

	// Batch STT
	{Category: "Batch STT", Severity: config.SeverityInfo, Expr: `logger\.info\('🎤 PROCESS START \(v3\)',.*?\);`, Multiline: true},
	{Category: "Batch STT", Severity: config.SeverityWarn, Expr: `logger\.warn\('❌ PROCESS ABORT \(v3\) - no audio'\);`},
	{Category: "Batch STT", Severity: config.SeverityInfo, Expr: `logger\.info\('🎙️ TRANSCRIBING \(v3\)',.*?\);`},
	{Category: "Batch STT", Severity: config.SeverityInfo, Expr: `logger\.info\('Using Deepgram for fast transcription'\);`},
	{Category: "Batch STT", Severity: config.SeverityWarn, Expr: `logger\.warn\('⚠️ Deepgram returned empty transcript, falling back to Whisper'\);`},
	{Category: "Batch STT", Severity: config.SeverityInfo, Expr: `logger\.info\('✅ Whisper fallback result',.*?\);`, Multiline: true},
	{Category: "Batch STT", Severity: config.SeverityInfo, Expr: `logger\.info\('Deepgram not available, falling back to Whisper'\);`},
	{Category: "Batch STT", Severity: config.SeverityWarn, Expr: `logger\.warn\('⚠️ No speech detected in audio \(both Deepgram and Whisper returned empty\)'\);`},

	// TTS
	{Category: "TTS", Severity: config.SeverityInfo, Expr: `logger\.info\('🎤 STREAMING TTS \(v7\)',.*?\);`},
	{Category: "TTS", Severity: config.SeverityInfo, Expr: `logger\.info\('✅ STREAMING TTS COMPLETE \(v7\)',.*?\);`, Multiline: true},
	{Category: "TTS", Severity: config.SeverityWarn, Expr: `logger\.warn\('WebSocket not open, skipping chunk',.*?\);`, Multiline: true},
	{Category: "TTS", Severity: config.SeverityWarn, Expr: `logger\.warn\('WebSocket not open, cannot flush buffer',.*?\);`, Multiline: true},
	{Category: "TTS", Severity: config.SeverityDebug, Expr: `logger\.debug\('Flushed remaining audio',.*?\);`, Multiline: true},
	{Category: "TTS", Severity: config.SeverityWarn, Expr: `logger\.warn\('WebSocket closed mid-stream, stopping audio transmission',.*?\);`, Multiline: true},

	// Final message
	{Category: "Final message", Severity: config.SeverityInfo, Expr: `logger\.info\('🎤 SENDING FINAL MESSAGE \(v13\)',.*?\);`},
	{Category: "Final message", Severity: config.SeverityInfo, Expr: `logger\.info\('⏳ WAITING FOR FINAL MESSAGE \(v13\)',.*?\);`, Multiline: true},
	{Category: "Final message", Severity: config.SeverityInfo, Expr: `logger\.info\('✅ FINAL MESSAGE COMPLETE \(v13\)'\);`},

	// Disconnect
	{Category: "Disconnect", Severity: config.SeverityInfo, Expr: `logger\.info\('🔌 DISCONNECTED \(v4\)',.*?\);`},
	{Category: "Disconnect", Severity: config.SeverityInfo, Expr: `logger\.info\('Closing Deepgram streaming connection'\);`},
	{Category: "Disconnect", Severity: config.SeverityInfo, Expr: `logger\.info\('✅ Deepgram connection closed'\);`},
	{Category: "Disconnect", Severity: config.SeverityInfo, Expr: `logger\.info\('⏳ DELAY CLEANUP \(v4\) - 30s'\);`},
	{Category: "Disconnect", Severity: config.SeverityInfo, Expr: `logger\.info\('🗑️ DELETE SESSION \(v4\)'\);`},
}

// Default returns a copy of the built-in removal catalogue, in application
// order.
func Default() []Rule {
	rules := make([]Rule, len(defaultRules))
	copy(rules, defaultRules)
	return rules
}
