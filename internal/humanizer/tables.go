package humanizer

// Classification tables mapping a numeric YouTube format id to its container
// extension. These are versioned lookup data for known encoding profiles:
// supporting a new encoding means adding an entry here, nothing else.
// Entries absent from the applicable table are dropped during catalog
// building rather than defaulted, so unverified encodings never ship.

var videoFormatExtensions = map[int]string{
	// 7680x4320
	702: "mp4", 571: "mp4", 402: "mp4", 272: "webm",
	// 3840x2160
	701: "mp4", 401: "mp4", 337: "webm", 315: "webm", 313: "webm", 305: "mp4", 266: "mp4",
	// 2560x1440
	700: "mp4", 400: "mp4", 336: "webm", 308: "webm", 271: "webm", 304: "mp4", 264: "mp4",
	// 1920x1080 (616 webm Premium m3u8 deliberately excluded)
	699: "mp4", 399: "mp4", 335: "webm", 303: "webm", 248: "webm", 299: "mp4", 137: "mp4", 216: "mp4", 170: "webm",
	// 1280x720
	698: "mp4", 398: "mp4", 334: "webm", 302: "webm", 612: "webm", 247: "webm", 298: "mp4", 136: "mp4", 169: "webm",
	// 854x480
	697: "mp4", 397: "mp4", 333: "webm", 244: "webm", 135: "mp4", 168: "webm",
	// 640x360
	696: "mp4", 396: "mp4", 332: "webm", 243: "webm", 134: "mp4", 167: "webm",
	// 426x240
	695: "mp4", 395: "mp4", 331: "webm", 242: "webm", 133: "mp4",
	// 256x144
	694: "mp4", 394: "mp4", 330: "webm", 278: "webm", 598: "webm", 160: "mp4", 597: "mp4",
}

var audioFormatExtensions = map[int]string{
	338: "webm", // Opus - (VBR) ~480 Kbps - Quadraphonic (4)
	380: "mp4",  // AC3 - 384 Kbps - Surround (5.1)
	328: "mp4",  // EAC3 - 384 Kbps - Surround (5.1)
	258: "mp4",  // AAC (LC) - 384 Kbps - Surround (5.1)
	325: "mp4",  // DTSE (DTS Express) - 384 Kbps - Surround (5.1)
	327: "mp4",  // AAC (LC) - 256 Kbps - Surround (5.1)
	141: "mp4",  // AAC (LC) - 256 Kbps - Stereo (2)
	774: "webm", // Opus - (VBR) ~256 Kbps - Stereo (2)
	256: "mp4",  // AAC (HE v1) - 192 Kbps - Surround (5.1)
	251: "webm", // Opus - (VBR) <=160 Kbps - Stereo (2)
	140: "mp4",  // AAC (LC) - 128 Kbps - Stereo (2)
	250: "webm", // Opus - (VBR) ~70 Kbps - Stereo (2)
	249: "webm", // Opus - (VBR) ~50 Kbps - Stereo (2)
	139: "mp4",  // AAC (HE v1) - 48 Kbps - Stereo (2)
	600: "webm", // Opus - (VBR) ~35 Kbps - Stereo (2)
	599: "mp4",  // AAC (HE v1) - 30 Kbps - Stereo (2)
}

// fallbackAudioExtension is defensive only: a stream that passed the table
// filter always has a mapped extension.
const fallbackAudioExtension = "mp3"
