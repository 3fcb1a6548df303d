package types

import (
	"time"

	"github.com/opcuacore/core/internal/buf"
)

// DateTime is a tick count: 100-nanosecond units since 1601-01-01 UTC,
// spec §3.
type DateTime int64

const (
	ticksPerSecond = 10_000_000
	// unixEpochOffsetTicks is the number of 100-ns ticks between the
	// 1601-01-01 UTC epoch and the 1970-01-01 UTC Unix epoch.
	unixEpochOffsetTicks = 116444736000000000
)

// DateTimeStruct is the broken-down calendar + sub-second representation
// of a DateTime, matching UA_DateTimeStruct.
type DateTimeStruct struct {
	NanoSec, MicroSec, MilliSec uint16
	Sec, Min, Hour              uint16
	Day, Month, Year            uint16
}

// ToStruct decomposes t into calendar fields and sub-second components,
// matching UA_DateTime_toStruct exactly, including its modulo-based
// sub-second arithmetic.
func (t DateTime) ToStruct() DateTimeStruct {
	var s DateTimeStruct
	s.NanoSec = uint16((t % 10) * 100)
	s.MicroSec = uint16((t % 10000) / 10)
	s.MilliSec = uint16((t % 10000000) / 10000)

	secSinceUnixEpoch := (int64(t) - unixEpochOffsetTicks) / ticksPerSecond
	tm := time.Unix(secSinceUnixEpoch, 0).UTC()
	s.Sec = uint16(tm.Second())
	s.Min = uint16(tm.Minute())
	s.Hour = uint16(tm.Hour())
	s.Day = uint16(tm.Day())
	s.Month = uint16(tm.Month())
	s.Year = uint16(tm.Year())
	return s
}

// String renders t as exactly "MM/DD/YYYY HH:MM:SS.mmm.uuu.nnn" (31
// bytes), matching UA_DateTime_toString.
func (t DateTime) String() string {
	st := t.ToStruct()
	out := make([]byte, 31)
	buf.PutDecimal(out[0:2], st.Month, 2)
	out[2] = '/'
	buf.PutDecimal(out[3:5], st.Day, 2)
	out[5] = '/'
	buf.PutDecimal(out[6:10], st.Year, 4)
	out[10] = ' '
	buf.PutDecimal(out[11:13], st.Hour, 2)
	out[13] = ':'
	buf.PutDecimal(out[14:16], st.Min, 2)
	out[16] = ':'
	buf.PutDecimal(out[17:19], st.Sec, 2)
	out[19] = '.'
	buf.PutDecimal(out[20:23], st.MilliSec, 3)
	out[23] = '.'
	buf.PutDecimal(out[24:27], st.MicroSec, 3)
	out[27] = '.'
	buf.PutDecimal(out[28:31], st.NanoSec, 3)
	return string(out)
}

// Now returns the current time as DateTime ticks, used to seed the RNG
// with extra entropy (spec §5).
func Now() DateTime {
	unixNanos := time.Now().UTC().UnixNano()
	return DateTime(unixNanos/100 + unixEpochOffsetTicks)
}
