package resolver

// defaultPresentationEmoji reports whether cp defaults to emoji
// presentation per the Unicode Emoji_Presentation property, the table
// CodepointResolver's step 4 consults when the caller supplied no
// explicit variation selector. The Plane-1 pictograph blocks are
// grouped as coarse ranges with their default-text exceptions carved
// out; the BMP symbols are listed individually because those blocks
// mix default-emoji and default-text codepoints (U+2615 HOT BEVERAGE
// defaults to emoji, U+270C VICTORY HAND to text). Only the
// default-presentation bit is needed here — not ZWJ sequence
// detection, modifier bases, or tag characters — so the table stays
// narrow.
func defaultPresentationEmoji(cp rune) bool {
	switch {
	case cp >= 0x1F600 && cp <= 0x1F64F: // Emoticons
		return true
	case cp >= 0x1F300 && cp <= 0x1F5FF: // Misc Symbols and Pictographs
		return !defaultTextPictograph(cp)
	case cp >= 0x1F680 && cp <= 0x1F6FF: // Transport and Map Symbols
		return !defaultTextPictograph(cp)
	case cp >= 0x1F900 && cp <= 0x1F9FF: // Supplemental Symbols and Pictographs
		return true
	case cp >= 0x1FA00 && cp <= 0x1FA6F: // Symbols and Pictographs Extended-A
		return true
	case cp >= 0x1FA70 && cp <= 0x1FAFF: // Symbols and Pictographs Extended-B
		return true
	case cp >= 0x1F1E6 && cp <= 0x1F1FF: // regional indicators (flags)
		return true
	case cp == 0x1F004 || cp == 0x1F0CF: // mahjong red dragon, playing card joker
		return true
	case cp == 0x1F18E, cp >= 0x1F191 && cp <= 0x1F19A: // squared AB, CL..VS
		return true
	case cp == 0x1F201 || cp == 0x1F21A || cp == 0x1F22F: // squared katakana/CJK
		return true
	case cp >= 0x1F232 && cp <= 0x1F236, cp >= 0x1F238 && cp <= 0x1F23A:
		return true
	case cp == 0x1F250 || cp == 0x1F251:
		return true
	default:
		return bmpDefaultEmoji(cp)
	}
}

// defaultTextPictograph lists the Plane-1 pictographs whose
// Emoji_Presentation is No despite sitting inside an otherwise
// default-emoji block (mostly the Webdings-derived symbols added in
// Unicode 7.0, e.g. U+1F321 THERMOMETER and U+1F5E3 SPEAKING HEAD).
func defaultTextPictograph(cp rune) bool {
	switch {
	case cp >= 0x1F321 && cp <= 0x1F32C,
		cp == 0x1F336, cp == 0x1F37D,
		cp >= 0x1F394 && cp <= 0x1F39F,
		cp >= 0x1F3CB && cp <= 0x1F3CE,
		cp >= 0x1F3D4 && cp <= 0x1F3DF,
		cp == 0x1F3F3, cp >= 0x1F3F5 && cp <= 0x1F3F7,
		cp == 0x1F43F, cp == 0x1F441, cp == 0x1F4FD, cp == 0x1F4FE,
		cp >= 0x1F549 && cp <= 0x1F54A,
		cp >= 0x1F56F && cp <= 0x1F579,
		cp >= 0x1F587 && cp <= 0x1F594,
		cp >= 0x1F5A5 && cp <= 0x1F5FA,
		cp >= 0x1F6C6 && cp <= 0x1F6CF,
		cp >= 0x1F6E0 && cp <= 0x1F6EA,
		cp >= 0x1F6F0 && cp <= 0x1F6F3:
		return true
	}
	return false
}

// bmpDefaultEmoji lists the BMP codepoints with Emoji_Presentation=Yes.
func bmpDefaultEmoji(cp rune) bool {
	switch {
	case cp == 0x231A || cp == 0x231B: // watch, hourglass
		return true
	case cp >= 0x23E9 && cp <= 0x23EC, cp == 0x23F0, cp == 0x23F3:
		return true
	case cp == 0x25FD || cp == 0x25FE: // small squares
		return true
	case cp == 0x2614 || cp == 0x2615: // umbrella with rain, hot beverage
		return true
	case cp >= 0x2648 && cp <= 0x2653: // zodiac
		return true
	case cp == 0x267F || cp == 0x2693 || cp == 0x26A1:
		return true
	case cp == 0x26AA || cp == 0x26AB:
		return true
	case cp == 0x26BD || cp == 0x26BE || cp == 0x26C4 || cp == 0x26C5:
		return true
	case cp == 0x26CE || cp == 0x26D4 || cp == 0x26EA:
		return true
	case cp == 0x26F2 || cp == 0x26F3 || cp == 0x26F5 || cp == 0x26FA || cp == 0x26FD:
		return true
	case cp == 0x2705, cp == 0x270A || cp == 0x270B:
		return true
	case cp == 0x2728 || cp == 0x274C || cp == 0x274E:
		return true
	case cp >= 0x2753 && cp <= 0x2755, cp == 0x2757:
		return true
	case cp >= 0x2795 && cp <= 0x2797, cp == 0x27B0, cp == 0x27BF:
		return true
	case cp == 0x2B1B || cp == 0x2B1C || cp == 0x2B50 || cp == 0x2B55:
		return true
	}
	return false
}
