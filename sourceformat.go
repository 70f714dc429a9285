package fm9

import "fmt"

// sourceFormat describes the producer format a container was converted
// from. It is display-only data; nothing in the extraction logic depends on
// it.
type sourceFormat struct {
	short string
	name  string
}

func (f sourceFormat) String() string {
	return fmt.Sprintf("%s (%s)", f.short, f.name)
}

// sourceFormats maps the header's source format code to its display names.
// Code ranges: 0x01-0x0f pass-through, 0x10-0x1f MIDI-style, 0x20-0x5f
// native OPL, 0x60-0xa0 tracker formats. Code 0 means unspecified.
var sourceFormats = map[uint8]sourceFormat{
	// Pass-through / container formats
	0x01: {"VGM", "Video Game Music"},
	0x02: {"VGZ", "Video Game Music, compressed"},
	0x03: {"FM9", "FM9 re-encode"},

	// MIDI-style formats
	0x10: {"MID", "Standard MIDI File"},
	0x11: {"KAR", "Karaoke MIDI"},
	0x12: {"RMI", "RIFF MIDI"},
	0x13: {"XMI", "Miles XMI"},
	0x14: {"MUS", "DMX MUS"},
	0x15: {"HMP", "HMI HMP"},
	0x16: {"HMI", "HMI"},
	0x17: {"KLM", "Wacky Wheels"},

	// Native OPL formats
	0x20: {"RAD", "Reality AdLib Tracker"},
	0x21: {"IMF", "id Software IMF"},
	0x22: {"ADLIB", "id Software ADLIB"},
	0x23: {"DRO", "DOSBox Raw OPL"},
	0x24: {"CMF", "Creative Music File"},
	0x25: {"A2M", "Adlib Tracker 2"},
	0x26: {"A2T", "Adlib Tracker 2"},
	0x27: {"AMD", "AMUSIC"},
	0x28: {"XMS", "XMS-Tracker"},
	0x29: {"BAM", "Bob's Adlib Music"},
	0x2a: {"CFF", "Boomtracker"},
	0x2b: {"D00", "EdLib"},
	0x2c: {"DFM", "Digital-FM"},
	0x2d: {"HSC", "HSC-Tracker"},
	0x2e: {"HSP", "HSC Packed"},
	0x2f: {"KSM", "Ken Silverman Music"},
	0x30: {"MAD", "Mlat Adlib Tracker"},
	0x31: {"MKJ", "MKJamz"},
	0x32: {"DTM", "DeFy Adlib Tracker"},
	0x33: {"MTK", "MPU-401 Trakker"},
	0x34: {"MTR", "Master Tracker"},
	0x35: {"SA2", "Surprise! Adlib Tracker 2"},
	0x36: {"SAT", "Surprise! Adlib Tracker"},
	0x37: {"XAD", "XAD"},
	0x38: {"BMF", "BMF Adlib Tracker"},
	0x39: {"LDS", "LOUDNESS"},
	0x3a: {"PLX", "PALLADIX"},
	0x3b: {"XSM", "eXtra Simple Music"},
	0x3c: {"PIS", "Beni Tracker"},
	0x3d: {"MSC", "AdLib MSC"},
	0x3e: {"SNG", "SNGPlay"},
	0x3f: {"JBM", "JBM Adlib Music"},
	0x40: {"GOT", "God of Thunder"},
	0x41: {"SOP", "sopepos Sequencer"},
	0x42: {"ROL", "AdLib Visual Composer"},
	0x43: {"RAW", "Raw AdLib"},
	0x44: {"RAC", "Raw AdLib"},
	0x45: {"LAA", "LucasArts AdLib"},
	0x46: {"SCI", "Sierra SCI"},
	0x47: {"MDI", "AdLib MIDIPlay"},
	0x48: {"MDY", "AdLib MDY"},
	0x49: {"IMS", "AdLib IMS"},
	0x4a: {"ADL", "Westwood ADL"},
	0x4b: {"ADL", "Coktel Vision"},
	0x4c: {"DMO", "TwinTeam"},
	0x4d: {"RIX", "Softstar RIX"},
	0x4e: {"MKF", "Softstar RIX"},
	0x4f: {"U6M", "Ultima 6"},
	0x50: {"HSQ", "Herbulot AdLib"},
	0x51: {"SQX", "Herbulot AdLib"},
	0x52: {"SDB", "Herbulot AdLib"},
	0x53: {"AGD", "Herbulot AdLib"},
	0x54: {"HA2", "Herbulot AdLib"},

	// Tracker formats
	0x60: {"MOD", "ProTracker"},
	0x61: {"S3M", "Scream Tracker 3"},
	0x62: {"XM", "FastTracker 2"},
	0x63: {"IT", "Impulse Tracker"},
	0x64: {"MPTM", "OpenMPT"},
	0x65: {"STM", "Scream Tracker 2"},
	0x66: {"STX", "Scream Tracker Ext"},
	0x67: {"STP", "Scream Tracker Project"},
	0x68: {"669", "Composer 669"},
	0x69: {"667", "Composer 667"},
	0x6a: {"C67", "Composer 667"},
	0x6b: {"MTM", "MultiTracker"},
	0x6c: {"MED", "OctaMED"},
	0x6d: {"OKT", "Oktalyzer"},
	0x6e: {"FAR", "Farandole"},
	0x6f: {"FMT", "Farandole"},
	0x70: {"MDL", "Digitrakker"},
	0x71: {"AMS", "Velvet Studio"},
	0x72: {"DBM", "DigiBooster Pro"},
	0x73: {"DIGI", "DigiBooster"},
	0x74: {"DMF", "X-Tracker"},
	0x75: {"DSM", "DSIK"},
	0x76: {"DSYM", "DSIK Symbol"},
	0x77: {"DTM", "DeFy Adlib Tracker"},
	0x78: {"AMF", "ASYLUM"},
	0x79: {"PSM", "Epic MASI"},
	0x7a: {"MT2", "MadTracker 2"},
	0x7b: {"UMX", "Unreal Music"},
	0x7c: {"J2B", "Jazz Jackrabbit 2"},
	0x7d: {"PTM", "PolyTracker"},
	0x7e: {"PPM", "Packed PolyTracker"},
	0x7f: {"PLM", "Plastic Music"},
	0x80: {"SFX", "Startracker"},
	0x81: {"SFX2", "Startracker 2"},
	0x82: {"NST", "NoiseTracker"},
	0x83: {"WOW", "Grave Composer"},
	0x84: {"ULT", "UltraTracker"},
	0x85: {"GDM", "GEMINI"},
	0x86: {"MO3", "MO3"},
	0x87: {"OXM", "OXM"},
	0x88: {"RTM", "Real Tracker"},
	0x89: {"PT36", "ProTracker 3.6"},
	0x8a: {"M15", "15-instrument MOD"},
	0x8b: {"STK", "Soundtracker"},
	0x8c: {"ST26", "SoundTracker 2.6"},
	0x8d: {"UNIC", "UNIC Tracker"},
	0x8e: {"ICE", "ICE Tracker"},
	0x8f: {"MMCMP", "MMCMP"},
	0x90: {"XPK", "XPK"},
	0x91: {"MMS", "MMS"},
	0x92: {"CBA", "CBA"},
	0x93: {"ETX", "EMU Tracker"},
	0x94: {"FC", "Future Composer"},
	0x95: {"FC13", "Future Composer 1.3"},
	0x96: {"FC14", "Future Composer 1.4"},
	0x97: {"FST", "Future Sound Tracker"},
	0x98: {"FTM", "FamiTracker"},
	0x99: {"GMC", "Game Music Creator"},
	0x9a: {"GTK", "Graoumf Tracker"},
	0x9b: {"GT2", "Graoumf Tracker 2"},
	0x9c: {"PUMA", "PumaTracker"},
	0x9d: {"SMOD", "SMOD"},
	0x9e: {"SYMMOD", "Symbolic"},
	0x9f: {"TCB", "TCB Tracker"},
	0xa0: {"XMF", "XMF"},
}

// SourceFormatName returns the display string for a source format code.
// Code 0 is "unspecified" and yields an empty string; unrecognized nonzero
// codes yield a placeholder rather than an error.
func SourceFormatName(code uint8) string {
	if code == 0 {
		return ""
	}
	if f, ok := sourceFormats[code]; ok {
		return f.String()
	}
	return fmt.Sprintf("unknown (0x%02x)", code)
}
