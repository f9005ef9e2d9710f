// Package testutil provides shared input fixtures for unit tests.
package testutil

// Router exports for a five-neighbor migration. Expected outcome per neighbor:
//
//	10.0.0.1   TenGigE0/0/0/1  CUST-A  120 -> 118   "-2"
//	10.0.0.5   TenGigE0/0/0/2  CUST-B   45 -> 45    "0"
//	10.0.0.9   TenGigE0/0/0/3  CUST-A  Idle -> 12   "Old Migration"
//	10.0.0.13  Bundle-Ether10  N/A     Active -> Idle "OK"
//	10.0.0.17  N/A             N/A     300 -> N/A   "Not Migrated"
const (
	OldNeighbors = `
10.0.0.1        4 65001   12345   12340     1000    0    0 2w3d         120
10.0.0.5        4 65002    5555    5550     1000    0    0 1d02h        45

10.0.0.9        4 65003       0       0        0    0    0 never        Idle
10.0.0.13       4 65004       0       0        0    0    0 00:10:11     Active
10.0.0.17       4 65005     100     100        0    0    0 3d04h        300
`

	OldInterfaces = `TenGigE0/0/0/1   10.0.0.0
TenGigE0/0/0/2   10.0.0.4
TenGigE0/0/0/3   10.0.0.8

Bundle-Ether10   10.0.0.12
`

	OldVRFs = `BGP neighbor is 10.0.0.1,  vrf CUST-A
BGP neighbor is 10.0.0.5,  vrf CUST-B
BGP neighbor is 10.0.0.9,  vrf CUST-A
`

	NewNeighbors = `10.0.0.1        4 65001   500   500     10    0    0 00:05:12     118
10.0.0.5        4 65002   500   500     10    0    0 00:05:12     45
10.0.0.9        4 65003   500   500     10    0    0 00:05:12     12
10.0.0.13       4 65004     0     0      0    0    0 00:05:12     Idle
`
)

// Default file names read from the working directory.
const (
	OldNeighborsFile  = "oldneighbors.txt"
	OldInterfacesFile = "oldinterfaces.txt"
	OldVRFsFile       = "oldvrfs.txt"
	NewNeighborsFile  = "newneighbors.txt"
)
