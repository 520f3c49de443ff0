package language

// DefaultVoiceID is the ElevenLabs voice used when no dedicated voice
// has been curated for a language yet.
const DefaultVoiceID = "EXAVITQu4vr4xnSDxMaL" // Rachel

// voiceTable maps language codes to ElevenLabs voice IDs. Languages
// without an entry fall back to DefaultVoiceID; several entries point
// at the default on purpose until dedicated voices are curated.
var voiceTable = map[string]string{
	"en": "21m00Tcm4TlvDq8ikWAM", // Rachel (English)
	"es": "VR6AewLTigWG4xSOukaG", // Arnold
	"fr": "ErXwobaYiN019PkySvjV", // Antoni
	"de": "pNInz6obpgDQGcFmaJgB", // Adam
	"it": "MF3mGyEYCl7XYWbV9V6O", // Elli
	"pt": "TxGEqnHWrfWFTfGW9XjX", // Josh
	"ru": "yoZ06aMxZJJ28mfd3POQ", // Sam
	"ja": "EXAVITQu4vr4xnSDxMaL",
	"ko": "EXAVITQu4vr4xnSDxMaL",
	"zh": "EXAVITQu4vr4xnSDxMaL",
	"ar": "EXAVITQu4vr4xnSDxMaL",
	"hi": "EXAVITQu4vr4xnSDxMaL",
	"nl": "pNInz6obpgDQGcFmaJgB",
	"pl": "yoZ06aMxZJJ28mfd3POQ",
	"tr": "EXAVITQu4vr4xnSDxMaL",
}

// VoiceFor resolves a language code to an ElevenLabs voice ID. Every
// catalog language resolves to a non-empty voice.
func VoiceFor(code string) string {
	if id, ok := voiceTable[code]; ok && id != "" {
		return id
	}
	return DefaultVoiceID
}
