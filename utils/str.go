package utils

import (
	"reflect"
	"strconv"
	"strings"
	"unsafe"
)

// StrToInt32s parses a separated list of integers, skipping empty or
// malformed items. Count validation is left to the caller.
func StrToInt32s(s, sep string) []int32 {
	var (
		ids  = strings.Split(s, sep)
		rets = make([]int32, 0, len(ids))
		i    int
		e    error
	)
	for _, id := range ids {
		i, e = strconv.Atoi(strings.TrimSpace(id))
		if e == nil {
			rets = append(rets, int32(i))
		}
	}
	return rets
}

func Int32sToStr(ids []int32, sep byte) string {
	var ret strings.Builder
	for i, id := range ids {
		if i > 0 {
			ret.WriteByte(sep)
		}
		ret.WriteString(strconv.FormatInt(int64(id), 10))
	}
	return ret.String()
}

func S2B(s string) []byte {
	const MaxInt32 = 1<<31 - 1
	return (*[MaxInt32]byte)(unsafe.Pointer((*reflect.StringHeader)(
		unsafe.Pointer(&s)).Data))[: len(s)&MaxInt32 : len(s)&MaxInt32]
}
