// Package useragent classifies HTTP User-Agent strings into the coarse
// device taxonomy used by the visitor collector.
//
// It derives four independent axes from one identification string:
//   - Device type – Desktop, Mobile or Tablet
//   - Operating system – Windows, MacOS, Linux, Android, iOS or Unknown
//   - Browser family – Chrome, Safari, Firefox, Edge, Opera or Unknown
//   - Hardware brand – Samsung, Apple, Huawei, Xiaomi, Motorola, LG, Nokia,
//     with "PC" as the fallback for anything unrecognized
//
// Classification is priority-ordered keyword matching: each axis walks a
// fixed list of case-insensitive markers and the first match wins. The order
// encodes the precedence rules of real-world UA strings – a tablet marker
// overrides a mobile one (every iPad also advertises "Mobile"), an Edge
// marker overrides Chrome (Chromium Edge advertises both), and Chrome
// overrides Safari (every Chrome advertises "Safari").
//
// The device model is intentionally not derived; Inspect always reports
// "Unknown". Reliable model extraction needs a full UA database, which is out
// of scope for this package.
//
// Parsing uses plain-string look-ups only, never fails, and allocates
// nothing beyond the returned Device value, which makes it safe on the
// request hot path.
//
// # Usage
//
//	dev := useragent.Inspect(r.UserAgent(), "1920x1080", "en-US")
//	if dev.Type == useragent.DeviceMobile {
//	    // mobile visitor
//	}
package useragent
