/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledger

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/params"
)

// FormatEther renders a wei amount as a decimal ether string, e.g. "1.5" or "0.0".
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0.0"
	}

	sign := ""

	v := new(big.Int).Set(wei)
	if v.Sign() < 0 {
		sign = "-"

		v.Neg(v)
	}

	whole, frac := new(big.Int).QuoRem(v, big.NewInt(params.Ether), new(big.Int))

	fracStr := strings.TrimRight(leftPad(frac.String(), 18), "0")
	if fracStr == "" {
		fracStr = "0"
	}

	return sign + whole.String() + "." + fracStr
}

func leftPad(s string, n int) string {
	if len(s) >= n {
		return s
	}

	return strings.Repeat("0", n-len(s)) + s
}
