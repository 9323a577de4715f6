package regdb

// Pre-a6xx tables. The reconstructor uses the a6xx names for the IB
// remaining-size registers on every generation (the older databases call
// them CP_IBn_BUFSZ), so the lookups stay generation independent.

var a5xxRegs = map[uint32]Register{
	0x04f5: {Name: "RBBM_STATUS"},
	0x04f6: {Name: "RBBM_STATUS1"},
	0x04f7: {Name: "RBBM_STATUS2"},
	0x04e1: {Name: "RBBM_INT_0_STATUS"},

	0x0800: {Name: "CP_RB_BASE"},
	0x0801: {Name: "CP_RB_BASE_HI"},
	0x0802: {Name: "CP_RB_CNTL"},
	0x0806: {Name: "CP_RB_RPTR"},
	0x0807: {Name: "CP_RB_WPTR"},
	0x0b1a: {Name: "CP_RB_RPTR_ADDR_LO"},
	0x0b1b: {Name: "CP_RB_RPTR_ADDR_HI"},
	0x0b1f: {Name: "CP_IB1_BASE"},
	0x0b20: {Name: "CP_IB1_BASE_HI"},
	0x0b21: {Name: "CP_IB1_REM_SIZE"},
	0x0b22: {Name: "CP_IB2_BASE"},
	0x0b23: {Name: "CP_IB2_BASE_HI"},
	0x0b24: {Name: "CP_IB2_REM_SIZE"},
	0x0b1c: {Name: "CP_HW_FAULT"},
	0x0b1d: {Name: "CP_INTERRUPT_STATUS"},
}

var a4xxRegs = map[uint32]Register{
	0x0004: {Name: "RBBM_STATUS"},

	0x2200: {Name: "CP_RB_BASE"},
	0x2201: {Name: "CP_RB_CNTL"},
	0x2204: {Name: "CP_RB_RPTR"},
	0x2205: {Name: "CP_RB_WPTR"},
	0x2210: {Name: "CP_IB1_BASE"},
	0x2211: {Name: "CP_IB1_REM_SIZE"},
	0x2212: {Name: "CP_IB2_BASE"},
	0x2213: {Name: "CP_IB2_REM_SIZE"},
}
