package pm4

// Type7 (and type3) opcodes, from the adreno_pm4 encoding.
const (
	CP_NOP                     = 0x10
	CP_WAIT_MEM_WRITES         = 0x12
	CP_WAIT_FOR_ME             = 0x13
	CP_WAIT_MEM_GTE            = 0x14
	CP_SKIP_IB2_ENABLE_GLOBAL  = 0x1d
	CP_DRAW_INDX               = 0x22
	CP_SKIP_IB2_ENABLE_LOCAL   = 0x23
	CP_WAIT_FOR_IDLE           = 0x26
	CP_DRAW_INDIRECT_MULTI     = 0x2a
	CP_BLIT                    = 0x2c
	CP_SET_BIN_DATA5           = 0x2f
	CP_LOAD_STATE6_GEOM        = 0x32
	CP_EXEC_CS                 = 0x33
	CP_LOAD_STATE6_FRAG        = 0x34
	CP_LOAD_STATE6             = 0x36
	CP_INDIRECT_BUFFER_PFD     = 0x37
	CP_DRAW_INDX_OFFSET        = 0x38
	CP_REG_TEST                = 0x39
	CP_COND_INDIRECT_BUFFER    = 0x3a
	CP_WAIT_REG_MEM            = 0x3c
	CP_MEM_WRITE               = 0x3d
	CP_REG_TO_MEM              = 0x3e
	CP_INDIRECT_BUFFER         = 0x3f
	CP_MEM_TO_REG              = 0x42
	CP_SET_DRAW_STATE          = 0x43
	CP_COND_EXEC               = 0x44
	CP_COND_WRITE5             = 0x45
	CP_EVENT_WRITE             = 0x46
	CP_ME_INIT                 = 0x48
	CP_SMMU_TABLE_UPDATE       = 0x53
	CP_SET_PSEUDO_REG          = 0x56
	CP_CONTEXT_REG_BUNCH       = 0x5c
	CP_WHERE_AM_I              = 0x62
	CP_SET_MODE                = 0x63
	CP_SET_VISIBILITY_OVERRIDE = 0x64
	CP_SET_MARKER              = 0x65
	CP_CONTEXT_SWITCH_YIELD    = 0x6b
)

var opcodeNames = map[uint32]string{
	CP_NOP:                     "CP_NOP",
	CP_WAIT_MEM_WRITES:         "CP_WAIT_MEM_WRITES",
	CP_WAIT_FOR_ME:             "CP_WAIT_FOR_ME",
	CP_WAIT_MEM_GTE:            "CP_WAIT_MEM_GTE",
	CP_SKIP_IB2_ENABLE_GLOBAL:  "CP_SKIP_IB2_ENABLE_GLOBAL",
	CP_DRAW_INDX:               "CP_DRAW_INDX",
	CP_SKIP_IB2_ENABLE_LOCAL:   "CP_SKIP_IB2_ENABLE_LOCAL",
	CP_WAIT_FOR_IDLE:           "CP_WAIT_FOR_IDLE",
	CP_DRAW_INDIRECT_MULTI:     "CP_DRAW_INDIRECT_MULTI",
	CP_BLIT:                    "CP_BLIT",
	CP_SET_BIN_DATA5:           "CP_SET_BIN_DATA5",
	CP_LOAD_STATE6_GEOM:        "CP_LOAD_STATE6_GEOM",
	CP_EXEC_CS:                 "CP_EXEC_CS",
	CP_LOAD_STATE6_FRAG:        "CP_LOAD_STATE6_FRAG",
	CP_LOAD_STATE6:             "CP_LOAD_STATE6",
	CP_INDIRECT_BUFFER_PFD:     "CP_INDIRECT_BUFFER_PFD",
	CP_DRAW_INDX_OFFSET:        "CP_DRAW_INDX_OFFSET",
	CP_REG_TEST:                "CP_REG_TEST",
	CP_COND_INDIRECT_BUFFER:    "CP_COND_INDIRECT_BUFFER",
	CP_WAIT_REG_MEM:            "CP_WAIT_REG_MEM",
	CP_MEM_WRITE:               "CP_MEM_WRITE",
	CP_REG_TO_MEM:              "CP_REG_TO_MEM",
	CP_INDIRECT_BUFFER:         "CP_INDIRECT_BUFFER",
	CP_MEM_TO_REG:              "CP_MEM_TO_REG",
	CP_SET_DRAW_STATE:          "CP_SET_DRAW_STATE",
	CP_COND_EXEC:               "CP_COND_EXEC",
	CP_COND_WRITE5:             "CP_COND_WRITE5",
	CP_EVENT_WRITE:             "CP_EVENT_WRITE",
	CP_ME_INIT:                 "CP_ME_INIT",
	CP_SMMU_TABLE_UPDATE:       "CP_SMMU_TABLE_UPDATE",
	CP_SET_PSEUDO_REG:          "CP_SET_PSEUDO_REG",
	CP_CONTEXT_REG_BUNCH:       "CP_CONTEXT_REG_BUNCH",
	CP_WHERE_AM_I:              "CP_WHERE_AM_I",
	CP_SET_MODE:                "CP_SET_MODE",
	CP_SET_MARKER:              "CP_SET_MARKER",
	CP_SET_VISIBILITY_OVERRIDE: "CP_SET_VISIBILITY_OVERRIDE",
	CP_CONTEXT_SWITCH_YIELD:    "CP_CONTEXT_SWITCH_YIELD",
}

// OpcodeName returns the symbolic name of a packet opcode, or "" when not
// in the table.
func OpcodeName(opc uint32) string { return opcodeNames[opc] }

// Render-mode names for CP_SET_MARKER.
var markerModes = []string{
	"RM6_BYPASS", "RM6_BINNING", "RM6_GMEM", "RM6_ENDVIS",
	"RM6_RESOLVE", "RM6_YIELD", "RM6_COMPUTE", "RM6_BLIT2DSCALE",
	"RM6_IB1LIST_START", "RM6_IB1LIST_END",
}

func markerModeName(mode uint32) string {
	if int(mode) < len(markerModes) {
		return markerModes[mode]
	}
	return ""
}
