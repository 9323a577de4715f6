package regdb

// a6xx register layout, dword offsets. Extracted from the adreno register
// database; covers the command processor, RBBM status and the registers
// the crashdump reconstructor depends on.
var a6xxRegs = map[uint32]Register{
	0x0002: {Name: "RBBM_INT_0_MASK"},
	0x0010: {Name: "RBBM_INT_CLEAR_CMD"},
	0x0201: {Name: "RBBM_INT_0_STATUS"},
	0x0210: {Name: "RBBM_STATUS", Fields: []Bitfield{
		{Name: "GPU_BUSY_IGN_AHB", Lo: 23, Hi: 23},
		{Name: "GPU_BUSY_IGN_AHB_CP", Lo: 22, Hi: 22},
		{Name: "HLSQ_BUSY", Lo: 21, Hi: 21},
		{Name: "VSC_BUSY", Lo: 20, Hi: 20},
		{Name: "TPL1_BUSY", Lo: 19, Hi: 19},
		{Name: "SP_BUSY", Lo: 18, Hi: 18},
		{Name: "UCHE_BUSY", Lo: 17, Hi: 17},
		{Name: "VPC_BUSY", Lo: 16, Hi: 16},
		{Name: "VFD_BUSY", Lo: 15, Hi: 15},
		{Name: "TESS_BUSY", Lo: 14, Hi: 14},
		{Name: "PC_VSD_BUSY", Lo: 13, Hi: 13},
		{Name: "PC_DCALL_BUSY", Lo: 12, Hi: 12},
		{Name: "COM_DCOM_BUSY", Lo: 11, Hi: 11},
		{Name: "LRZ_BUSY", Lo: 10, Hi: 10},
		{Name: "A2D_BUSY", Lo: 9, Hi: 9},
		{Name: "CCU_BUSY", Lo: 8, Hi: 8},
		{Name: "RB_BUSY", Lo: 7, Hi: 7},
		{Name: "RAS_BUSY", Lo: 6, Hi: 6},
		{Name: "TSE_BUSY", Lo: 5, Hi: 5},
		{Name: "VBIF_BUSY", Lo: 4, Hi: 4},
		{Name: "DBGC_BUSY", Lo: 3, Hi: 3},
		{Name: "UCHE_AHB_BUSY", Lo: 2, Hi: 2},
		{Name: "CP_AHB_BUSY_CX_MASTER", Lo: 1, Hi: 1},
		{Name: "CP_AHB_BUSY_CP_MASTER", Lo: 0, Hi: 0},
	}},
	0x0211: {Name: "RBBM_STATUS1"},
	0x0212: {Name: "RBBM_STATUS2"},
	0x0213: {Name: "RBBM_STATUS3"},

	0x0800: {Name: "CP_RB_BASE"},
	0x0801: {Name: "CP_RB_BASE_HI"},
	0x0802: {Name: "CP_RB_CNTL"},
	0x0804: {Name: "CP_RB_RPTR_ADDR_LO"},
	0x0805: {Name: "CP_RB_RPTR_ADDR_HI"},
	0x0806: {Name: "CP_RB_RPTR"},
	0x0807: {Name: "CP_RB_WPTR"},
	0x0808: {Name: "CP_SQE_CNTL"},
	0x0821: {Name: "CP_HW_FAULT"},
	0x0823: {Name: "CP_INTERRUPT_STATUS"},
	0x0824: {Name: "CP_PROTECT_STATUS"},
	0x0825: {Name: "CP_STATUS_1"},
	0x0830: {Name: "CP_SQE_INSTR_BASE"},
	0x0831: {Name: "CP_SQE_INSTR_BASE_HI"},
	0x0840: {Name: "CP_MISC_CNTL"},

	0x0928: {Name: "CP_IB1_BASE"},
	0x0929: {Name: "CP_IB1_BASE_HI"},
	0x092a: {Name: "CP_IB1_REM_SIZE"},
	0x092b: {Name: "CP_IB2_BASE"},
	0x092c: {Name: "CP_IB2_BASE_HI"},
	0x092d: {Name: "CP_IB2_REM_SIZE"},

	0x0949: {Name: "CP_CSQ_IB1_STAT", Fields: []Bitfield{
		{Name: "REM", Lo: 16, Hi: 31},
	}},
	0x094a: {Name: "CP_CSQ_IB2_STAT", Fields: []Bitfield{
		{Name: "REM", Lo: 16, Hi: 31},
	}},

	0x0980: {Name: "CP_ALWAYS_ON_COUNTER_LO"},
	0x0981: {Name: "CP_ALWAYS_ON_COUNTER_HI"},
	0x098d: {Name: "CP_AHB_CNTL"},
	0x0a00: {Name: "CP_APERTURE_CNTL_HOST"},
	0x0a03: {Name: "CP_APERTURE_CNTL_CD"},

	0x0e00: {Name: "VSC_DBG_ECO_CNTL"},
	0x3000: {Name: "VBIF_VERSION"},
	0x3c01: {Name: "VBIF_XIN_HALT_CTRL0"},
	0x3c02: {Name: "VBIF_XIN_HALT_CTRL1"},
}
