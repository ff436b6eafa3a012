package opengl

// Vertex shader shared by every family whose geometry shader works in
// pixel space; the projection is applied after expansion.
const passthroughVertexSrc = `
#version 410 core
layout (location = 0) in vec2 aPos;

void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
}
` + "\x00"

// Fragment shader for all uniform-colored families.
const uniformFragmentSrc = `
#version 410 core
uniform vec4 color;

out vec4 fragColor;

void main() {
    fragColor = color;
}
` + "\x00"

// Line geometry shader: expands each segment into a quad half the stroke
// width each side of it. A zero-length segment has no normal and
// collapses onto a diagonal, matching the CPU tessellation of thick
// strips.
const lineGeometrySrc = `
#version 410 core
layout (lines) in;
layout (triangle_strip, max_vertices = 4) out;

uniform mat4 projection;
uniform float lineWidth;

void main() {
    vec2 start = gl_in[0].gl_Position.xy;
    vec2 end = gl_in[1].gl_Position.xy;
    vec2 dir = start - end;
    float len = length(dir);
    vec2 normal = len == 0.0 ? vec2(1.0, 1.0) : vec2(dir.y, -dir.x) / len;
    vec2 shift = normal * lineWidth * 0.5;

    gl_Position = projection * vec4(start - shift, 0.0, 1.0);
    EmitVertex();
    gl_Position = projection * vec4(start + shift, 0.0, 1.0);
    EmitVertex();
    gl_Position = projection * vec4(end - shift, 0.0, 1.0);
    EmitVertex();
    gl_Position = projection * vec4(end + shift, 0.0, 1.0);
    EmitVertex();
    EndPrimitive();
}
` + "\x00"

// Filled ellipse geometry shader: expands the center vertex into one
// triangle per segment. shape holds the half extents and the clockwise
// tilt in degrees. A non-positive segment count picks one from the
// extents; the cap keeps the emit count under the GL minimum guarantee
// of 256 output vertices.
const ellipseFilledGeometrySrc = `
#version 410 core
layout (points) in;
layout (triangle_strip, max_vertices = 255) out;

uniform mat4 projection;
uniform vec3 shape;
uniform int segments;

const float tau = 6.28318530717958647692;
const int maxSegments = 84;

void main() {
    int count = segments;
    if (count <= 0) {
        count = int(max(shape.x, shape.y) / 2.0) + 16;
    }
    count = clamp(count, 3, maxSegments);

    vec2 center = gl_in[0].gl_Position.xy;
    float tilt = radians(shape.z);
    float c = cos(tilt);
    float s = sin(tilt);
    mat2 rot = mat2(c, -s, s, c);

    float step = tau / float(count);
    for (int i = 0; i < count; i++) {
        float a0 = step * float(i);
        float a1 = step * float(i + 1);
        vec2 p0 = rot * vec2(shape.x * cos(a0), shape.y * sin(a0));
        vec2 p1 = rot * vec2(shape.x * cos(a1), shape.y * sin(a1));
        gl_Position = projection * vec4(center + p0, 0.0, 1.0);
        EmitVertex();
        gl_Position = projection * vec4(center + p1, 0.0, 1.0);
        EmitVertex();
        gl_Position = projection * vec4(center, 0.0, 1.0);
        EmitVertex();
        EndPrimitive();
    }
}
` + "\x00"

// Ellipse outline geometry shader: expands the center vertex into a
// closed triangle-strip ring. shape holds the half extents, the
// clockwise tilt in degrees and the border width; the stroke straddles
// the nominal curve a quarter border inward and outward per axis,
// matching the CPU arc outline tessellation.
const ellipseOutlineGeometrySrc = `
#version 410 core
layout (points) in;
layout (triangle_strip, max_vertices = 254) out;

uniform mat4 projection;
uniform vec4 shape;
uniform int segments;

const float tau = 6.28318530717958647692;
const int maxSegments = 126;

void main() {
    int count = segments;
    if (count <= 0) {
        count = int(max(shape.x, shape.y) / 2.0) + 16;
    }
    count = clamp(count, 3, maxSegments);

    vec2 center = gl_in[0].gl_Position.xy;
    float tilt = radians(shape.z);
    float c = cos(tilt);
    float s = sin(tilt);
    mat2 rot = mat2(c, -s, s, c);

    vec2 inner = shape.xy - shape.w * 0.25;
    vec2 outer = shape.xy + shape.w * 0.25;

    float step = tau / float(count);
    for (int i = 0; i <= count; i++) {
        float a = step * float(i);
        vec2 dir = vec2(cos(a), sin(a));
        gl_Position = projection * vec4(center + rot * (inner * dir), 0.0, 1.0);
        EmitVertex();
        gl_Position = projection * vec4(center + rot * (outer * dir), 0.0, 1.0);
        EmitVertex();
    }
    EndPrimitive();
}
` + "\x00"

// Filled rectangle geometry shader: expands the center vertex into the
// four corners. shape holds the full extents and the clockwise tilt in
// degrees.
const rectFilledGeometrySrc = `
#version 410 core
layout (points) in;
layout (triangle_strip, max_vertices = 4) out;

uniform mat4 projection;
uniform vec3 shape;

void main() {
    vec2 center = gl_in[0].gl_Position.xy;
    vec2 halfSize = shape.xy * 0.5;
    float tilt = radians(shape.z);
    float c = cos(tilt);
    float s = sin(tilt);
    mat2 rot = mat2(c, -s, s, c);

    gl_Position = projection * vec4(center + rot * vec2(-halfSize.x, -halfSize.y), 0.0, 1.0);
    EmitVertex();
    gl_Position = projection * vec4(center + rot * vec2(halfSize.x, -halfSize.y), 0.0, 1.0);
    EmitVertex();
    gl_Position = projection * vec4(center + rot * vec2(-halfSize.x, halfSize.y), 0.0, 1.0);
    EmitVertex();
    gl_Position = projection * vec4(center + rot * vec2(halfSize.x, halfSize.y), 0.0, 1.0);
    EmitVertex();
    EndPrimitive();
}
` + "\x00"

// Generic vertex shader: positions with a per-vertex color attribute,
// normalized from bytes by the attribute setup.
const genericVertexSrc = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aColor;

out vec4 vColor;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    vColor = aColor;
}
` + "\x00"

const genericFragmentSrc = `
#version 410 core
in vec4 vColor;

out vec4 fragColor;

void main() {
    fragColor = vColor;
}
` + "\x00"
