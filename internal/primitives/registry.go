package primitives

import (
	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Primitive type names understood by Draw.
const (
	Cube     = "cube"
	Sphere   = "sphere"
	Cylinder = "cylinder"
	Plane    = "plane"
)

// cached holds mesh and material for a primitive type. Created lazily on first Draw.
// offset shifts the mesh in model space so the drawn position is the primitive's center.
type cached struct {
	mesh   rl.Mesh
	mtl    rl.Material
	offset mgl32.Vec3
}

// Registry maps primitive type names to mesh+material. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
// All primitives share one lit shader.
type Registry struct {
	cache    map[string]cached
	shader   rl.Shader
	loaded   bool
	viewPos  [3]float32 // camera position, set each frame for lighting
	lightDir [3]float32 // direction to light (normalized), set each frame
}

// NewRegistry returns a registry with no primitives.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[string]cached),
		lightDir: [3]float32{0.5, 1, 0.5},
	}
}

// SetView sets camera position and direction-to-light for this frame. Call once per frame
// before drawing objects so lit primitives get correct shading.
func (r *Registry) SetView(viewPos, lightDir mgl32.Vec3) {
	r.viewPos = viewPos
	r.lightDir = lightDir.Normalize()
	if r.loaded {
		r.setLitShaderUniforms(r.shader)
	}
}

const (
	defaultSphereRings    = 16
	defaultSphereSlices   = 16
	defaultCylinderSlices = 16
)

// ensure creates the mesh and material for key if not yet cached. Every mesh is unit sized
// (side, diameter and height 1) so scale is the world size.
func (r *Registry) ensure(key string) (cached, bool) {
	if c, ok := r.cache[key]; ok {
		return c, true
	}
	var c cached
	switch key {
	case Cube:
		c.mesh = rl.GenMeshCube(1, 1, 1)
	case Sphere:
		c.mesh = rl.GenMeshSphere(0.5, defaultSphereRings, defaultSphereSlices)
	case Cylinder:
		// Raylib cylinder: base Y=0, top Y=height.
		c.mesh = rl.GenMeshCylinder(0.5, 1, defaultCylinderSlices)
		c.offset = mgl32.Vec3{0, -0.5, 0}
	case Plane:
		c.mesh = rl.GenMeshPlane(1, 1, 1, 1)
	default:
		return c, false
	}
	if !r.loaded {
		r.shader = loadLitShader()
		r.loaded = true
		r.setLitShaderUniforms(r.shader)
	}
	c.mtl = rl.LoadMaterialDefault()
	if rl.IsShaderValid(r.shader) {
		c.mtl.Shader = r.shader
	}
	r.cache[key] = c
	return c, true
}

// loadLitShader returns a directional light + ambient + specular shader. Same vertex attributes
// as raylib meshes: vertexPosition, vertexTexCoord, vertexNormal.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)

// defaultAmbient is the ambient term (dim so shadowed areas aren't pure black).
var defaultAmbient = [4]float32{0.2, 0.22, 0.26, 1.0}

// defaultLightColor is a soft warm-white for the directional light.
var defaultLightColor = [3]float32{1.0, 0.98, 0.95}

// defaultLightIntensity scales the directional diffuse (0–1).
const defaultLightIntensity = float32(0.75)

// defaultSpecularPower controls highlight tightness (higher = smaller, sharper highlight).
const defaultSpecularPower = float32(48.0)

// defaultSpecularStrength scales specular contribution (0–1).
const defaultSpecularStrength = float32(0.35)

// setLitShaderUniforms sets viewPos, lightDir, ambient, light color/intensity, and specular on the given shader (cgo-safe: local arrays).
func (r *Registry) setLitShaderUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	lightDir := [3]float32{r.lightDir[0], r.lightDir[1], r.lightDir[2]}
	amb := [4]float32{defaultAmbient[0], defaultAmbient[1], defaultAmbient[2], defaultAmbient[3]}
	lightColor := [3]float32{defaultLightColor[0], defaultLightColor[1], defaultLightColor[2]}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultLightIntensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularStrength}, rl.ShaderUniformFloat)
	}
}

// Transform builds the model matrix: translate, then rotate, then scale. Zero scale
// components are treated as 1.
func Transform(position mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) mgl32.Mat4 {
	for i := range scale {
		if scale[i] == 0 {
			scale[i] = 1
		}
	}
	return mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(rotation.Mat4()).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// ToMatrix converts a column-major mgl32 matrix to raylib's layout.
func ToMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

// Draw draws one instance of primType with the given model matrix and tint.
// Must be called between BeginMode3D and EndMode3D. Unknown types are skipped.
func (r *Registry) Draw(primType string, model mgl32.Mat4, tint rl.Color) {
	c, ok := r.ensure(primType)
	if !ok {
		return
	}
	if c.offset != (mgl32.Vec3{}) {
		model = model.Mul4(mgl32.Translate3D(c.offset.X(), c.offset.Y(), c.offset.Z()))
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	rl.DrawMesh(c.mesh, c.mtl, ToMatrix(model))
}

// DrawAt draws primType at position, rotated and scaled.
func (r *Registry) DrawAt(primType string, position mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3, tint rl.Color) {
	r.Draw(primType, Transform(position, rotation, scale), tint)
}

// Unload frees every cached mesh and the shared shader. Call before closing the window.
func (r *Registry) Unload() {
	for k, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, k)
	}
	if r.loaded && rl.IsShaderValid(r.shader) {
		rl.UnloadShader(r.shader)
	}
	r.loaded = false
}
