package preset

// Built-in preset identifiers.
const (
	IDMonoAudition          = "mono-audition"
	IDStereoAudition        = "stereo-audition"
	IDPairedRecording       = "paired-recording"
	IDPairedRecordingStrict = "paired-recording-strict"
	IDLongForm              = "long-form"
	IDConversational        = "conversational"
	// IDCustom selects the caller-supplied mutable slot.
	IDCustom = "custom"
)

// builtinOrder fixes the catalog listing order for display.
var builtinOrder = []string{
	IDMonoAudition,
	IDStereoAudition,
	IDPairedRecording,
	IDPairedRecordingStrict,
	IDLongForm,
	IDConversational,
}

var builtins = map[string]Config{
	IDMonoAudition: {
		Name:        "Mono Audition",
		FileTypes:   []string{"wav"},
		SampleRates: []string{"44100", "48000"},
		BitDepths:   []string{"16", "24"},
		Channels:    []string{"1"},
	},
	IDStereoAudition: {
		Name:        "Stereo Audition",
		FileTypes:   []string{"wav"},
		SampleRates: []string{"44100", "48000"},
		BitDepths:   []string{"16", "24"},
		Channels:    []string{"2"},
	},
	IDPairedRecording: {
		Name:               "Paired Recording",
		FileTypes:          []string{"wav"},
		SampleRates:        []string{"48000"},
		BitDepths:          []string{"16", "24"},
		Channels:           []string{"2"},
		MinDuration:        "30",
		StereoTypes:        []string{"dual-mono", "split-track"},
		OverlapWarnPercent: 5,
		OverlapFailPercent: 10,
		OverlapWarnSeconds: 3,
		OverlapFailSeconds: 6,
	},
	IDPairedRecordingStrict: {
		Name:               "Paired Recording (Strict)",
		FileTypes:          []string{"wav"},
		SampleRates:        []string{"48000"},
		BitDepths:          []string{"24"},
		Channels:           []string{"2"},
		MinDuration:        "30",
		StereoTypes:        []string{"split-track"},
		OverlapWarnPercent: 2,
		OverlapFailPercent: 5,
		OverlapWarnSeconds: 1.5,
		OverlapFailSeconds: 3,
	},
	IDLongForm: {
		Name:         "Long-Form Recording",
		FileTypes:    []string{"wav", "flac"},
		SampleRates:  []string{"44100", "48000"},
		BitDepths:    []string{"16", "24"},
		Channels:     []string{"1", "2"},
		MinDuration:  "300",
		FilenameMode: FilenameModeScript,
	},
	IDConversational: {
		Name:         "Bilingual Conversation",
		FileTypes:    []string{"wav"},
		SampleRates:  []string{"48000"},
		BitDepths:    []string{"16"},
		Channels:     []string{"2"},
		MinDuration:  "60",
		FilenameMode: FilenameModeConversation,
		StereoTypes:  []string{"split-track"},
	},
}
