package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jroosing/bindman/internal/zonefile"
)

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Usage: zonedump zone path/to/zonefile\n")
		os.Exit(2)
	}
	zone := flag.Arg(0)
	path := flag.Arg(1)

	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read zone file: %v\n", err)
		os.Exit(1)
	}
	text := string(raw)

	fmt.Printf("ZONE: %s\n", zonefile.NormalizeFQDN(zone))
	fmt.Printf("DEFAULT_TTL: %d\n", zonefile.ParseDefaultTTL(text))
	if soa, ok := zonefile.ParseSOA(text); ok {
		fmt.Printf("SOA: %s %s serial=%d refresh=%d retry=%d expire=%d minimum=%d\n",
			soa.PrimaryNS, soa.AdminEmail, soa.Serial, soa.Refresh, soa.Retry, soa.Expire, soa.Minimum)
	}

	engine := zonefile.NewEngine(false)
	recordsets, err := engine.ReadZone(zone, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse zone: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("RECORDSETS:")
	for _, rs := range recordsets {
		for _, v := range rs.Values {
			extra := ""
			if v.Priority != nil {
				extra += fmt.Sprintf(" prio=%d", *v.Priority)
			}
			if v.Weight != nil {
				extra += fmt.Sprintf(" weight=%d", *v.Weight)
			}
			if v.Port != nil {
				extra += fmt.Sprintf(" port=%d", *v.Port)
			}
			fmt.Printf("  %s %d IN %s %s%s\n", rs.Name, rs.TTL, rs.Type, v.Value, extra)
		}
	}
}
