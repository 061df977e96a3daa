package naming

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrUnknownSizeUnit is returned by SizeGB for human sizes that are not in G or M.
var ErrUnknownSizeUnit = errors.New("size unit is not G or M")

const sizeUnits = "BKMGTP"

var bitrateUnits = []string{" kbps", " Mbps", " Gbps", " Tbps", "Pbps", "Ebps", "Zbps", "Ybps"}

// HumanFileSize formats a byte count as "<value><unit>" with two decimals,
// e.g. 536870912 -> "512.00M". The unit is picked from the number of decimal
// digits in the byte count, stepping every three digits, while the value is
// scaled by powers of 1024.
func HumanFileSize(bytes int64) string {
	digits := len(strconv.FormatInt(bytes, 10))
	factor := (digits - 1) / 3
	unit := ""
	if factor < len(sizeUnits) {
		unit = sizeUnits[factor : factor+1]
	}
	return fmt.Sprintf("%.2f", float64(bytes)/math.Pow(1024, float64(factor))) + unit
}

// SizeGB converts a HumanFileSize value to decimal gigabytes. Gigabyte values
// are returned as written; megabyte values are divided by 1000 and rounded to
// two decimals.
func SizeGB(human string) (float64, error) {
	if human == "" {
		return 0, fmt.Errorf("%w: empty size", ErrUnknownSizeUnit)
	}
	unit := human[len(human)-1]
	if unit != 'G' && unit != 'M' {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSizeUnit, human)
	}
	v, err := strconv.ParseFloat(human[:len(human)-1], 64)
	if err != nil {
		return 0, fmt.Errorf("parse size %q: %w", human, err)
	}
	if unit == 'M' {
		return round2(v / 1000), nil
	}
	return v, nil
}

// SizeGBFromBytes is SizeGB(HumanFileSize(bytes)).
func SizeGBFromBytes(bytes int64) (float64, error) {
	return SizeGB(HumanFileSize(bytes))
}

// HumanBitrate formats a bitrate in bits per second, e.g. 4718592 -> "4.5 Mbps".
func HumanBitrate(bitsPerSecond float64) string {
	v := bitsPerSecond
	i := -1
	for {
		v /= 1024
		i++
		if v <= 1024 || i == len(bitrateUnits)-1 {
			break
		}
	}
	return strconv.FormatFloat(round2(max(v, 0.1)), 'f', -1, 64) + bitrateUnits[i]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
