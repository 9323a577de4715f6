package regdb

// a6xx GMU domain, dword offsets. The GMU is a separate always-32-bit
// register space; it is decoded independently and never mixed into the
// main register state.
var gmuRegs = map[uint32]Register{
	0x1a800: {Name: "GMU_GMU2HOST_INTR_INFO"},
	0x1a801: {Name: "GMU_GMU2HOST_INTR_CLR"},
	0x1a802: {Name: "GMU_GMU2HOST_INTR_MASK"},
	0x1a803: {Name: "GMU_HOST2GMU_INTR_SET"},
	0x1a804: {Name: "GMU_HOST2GMU_INTR_CLR"},
	0x1a900: {Name: "GMU_AHB_FENCE_STATUS"},
	0x1a906: {Name: "GMU_RBBM_INT_UNMASKED_STATUS"},

	0x1f400: {Name: "GMU_ALWAYS_ON_COUNTER_L"},
	0x1f401: {Name: "GMU_ALWAYS_ON_COUNTER_H"},
	0x1f80f: {Name: "GMU_CM3_SYSRESET"},
	0x1f810: {Name: "GMU_CM3_BOOT_CONFIG"},
	0x1f81a: {Name: "GMU_CM3_FW_INIT_RESULT", Fields: []Bitfield{
		{Name: "EXIT_CODE", Lo: 0, Hi: 7},
		{Name: "WATCHDOG", Lo: 8, Hi: 8},
	}},
	0x1f825: {Name: "GMU_CM3_FW_BUSY"},
	0x1f840: {Name: "GMU_HFI_CTRL_STATUS"},
	0x1f9c0: {Name: "GMU_RPMH_POWER_STATE"},
	0x1f9f0: {Name: "GMU_SPTPRAC_PWR_CLK_STATUS"},

	0x23b0: {Name: "GMU_AO_INTERRUPT_EN"},
	0x23b1: {Name: "GMU_AO_HOST_INTERRUPT_CLR"},
	0x23b2: {Name: "GMU_AO_HOST_INTERRUPT_STATUS", Fields: []Bitfield{
		{Name: "WDOG_BITE", Lo: 0, Hi: 0},
		{Name: "RSCC_COMP", Lo: 1, Hi: 1},
		{Name: "VDROOP", Lo: 2, Hi: 2},
		{Name: "FENCE_ERR", Lo: 3, Hi: 3},
		{Name: "DBD_WAKEUP", Lo: 4, Hi: 4},
		{Name: "HOST_AHB_BUS_ERROR", Lo: 5, Hi: 5},
	}},
	0x23b3: {Name: "GMU_AO_HOST_INTERRUPT_MASK"},
}
